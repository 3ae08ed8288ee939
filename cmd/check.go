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

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "List entries that break lexicon rules",
		Long: `Check every entry against the current lexicon rules and word type
patterns, and list entries that break them with the reasons.

Rules may change after entries were added, for example when
headword_unique is switched on in config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
	}
	return checkCmd
}

func runCheck(cmd *cobra.Command) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	out := cmd.OutOrStdout()
	policy := s.lex.Policy()
	illegal := s.lex.Illegal()
	for _, e := range illegal {
		fmt.Fprintf(out, "%6d  %s\n", e.ID, e.Headword)
		for _, m := range s.lex.Check(e, policy).Messages() {
			fmt.Fprintf(out, "        %s\n", m)
		}
	}

	if len(illegal) == 0 {
		gn.Info("All <em>%d</em> entries follow lexicon rules", s.lex.Len())
		return nil
	}
	gn.Warn("<em>%d</em> of %d entries break lexicon rules",
		len(illegal), s.lex.Len())
	return nil
}
