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
	"fmt"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getSweepCmd returns the sweep command.
func getSweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep TYPE",
		Short: "Remove stored forms a word type no longer has",
		Long: `Remove manually stored inflected forms of entries of the word type
when the form was removed from grammar.yaml.

Examples:
  gnlex sweep noun
  gnlex sweep 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, args)
		},
	}
	return sweepCmd
}

func runSweep(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	id, ok := typeID(s.eng, args[0])
	if !ok || id == 0 {
		err = fmt.Errorf("unknown word type %q", args[0])
		gn.PrintErrorMessage(err)
		return err
	}

	count := s.lex.SweepDeprecatedInflections(id)
	if count == 0 {
		gn.Info("No deprecated forms found")
		return nil
	}

	if err = s.save(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Removed <em>%d</em> deprecated forms", count)
	return nil
}
