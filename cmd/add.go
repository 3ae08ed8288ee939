/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/spf13/cobra"
)

// getAddCmd returns the add command.
func getAddCmd() *cobra.Command {
	var ef entryFlags

	addCmd := &cobra.Command{
		Use:   "add HEADWORD",
		Short: "Add an entry to the lexicon",
		Long: `Add a new entry to the lexicon.

The entry is checked against lexicon rules from config.yaml and against
the pattern of its word type from grammar.yaml. Use --force to keep an
entry that breaks the rules.

Examples:
  gnlex add lum -t "light, lamp" -y noun
  gnlex add thalan -t "to go" -y verb -c register=poetic
  gnlex add tor -t stone -y noun --form plural=tori`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, &ef)
		},
	}

	ef.register(addCmd)
	return addCmd
}

func runAdd(cmd *cobra.Command, args []string, ef *entryFlags) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	e := lexicon.Entry{Headword: args[0]}
	if err = ef.apply(cmd, s, &e); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = s.vet(&e, ef.force); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	id, err := s.lex.AddEntry(e)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	e.ID = id
	s.storeForms(e, ef.forms)

	if err = s.save(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Added <em>%s</em> with id <em>%d</em>", e.Headword, id)
	return nil
}
