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

// getRecalcCmd returns the recalc command.
func getRecalcCmd() *cobra.Command {
	recalcCmd := &cobra.Command{
		Use:   "recalc",
		Short: "Recompute pronunciations after grammar changes",
		Long: `Recompute pronunciations of all entries from the pronunciation
rules in grammar.yaml. Entries with a manual pronunciation keep it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecalc(cmd)
		},
	}
	return recalcCmd
}

func runRecalc(_ *cobra.Command) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	count := s.lex.RecalcPronunciations()
	if count == 0 {
		gn.Info("All pronunciations are up to date")
		return nil
	}

	if err = s.save(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Updated <em>%d</em> pronunciations", count)
	return nil
}
