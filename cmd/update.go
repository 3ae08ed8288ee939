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
	"github.com/spf13/cobra"
)

// getUpdateCmd returns the update command.
func getUpdateCmd() *cobra.Command {
	var ef entryFlags

	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of an entry",
		Long: `Change fields of an existing entry. Only the given flags are
changed. An empty --pronunciation returns to the generated pronunciation.

Examples:
  gnlex update 12 -t "light, lamp, glow"
  gnlex update 12 --headword luma --force
  gnlex update 12 -c gender=`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, &ef)
		},
	}

	ef.register(updateCmd)
	updateCmd.Flags().StringVarP(&ef.headword, "headword", "w", "",
		"new headword")
	return updateCmd
}

func runUpdate(cmd *cobra.Command, args []string, ef *entryFlags) error {
	ctx := context.Background()

	id, err := parseID(args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	e, err := s.lex.Get(id)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ef.apply(cmd, s, &e); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = s.vet(&e, ef.force); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = s.lex.Modify(id, e); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	s.storeForms(e, ef.forms)

	if err = s.save(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Updated entry <em>%d</em>", id)
	return nil
}
