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
	"github.com/gnames/gnlex/internal/ioreport"
	"github.com/spf13/cobra"
)

// getReportCmd returns the report command.
func getReportCmd() *cobra.Command {
	var asJSON bool
	var top int

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show corpus statistics of the lexicon",
		Long: `Show statistics of the lexicon: entries per word type, character
frequencies at the start, end and anywhere in headwords, most frequent
character sequences, phoneme frequencies and phoneme pairs.

The JSON output also contains letter and phoneme pair matrices.

Examples:
  gnlex report
  gnlex report --top 20
  gnlex report --json -j 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, asJSON, top)
		},
	}

	reportCmd.Flags().BoolVar(&asJSON, "json", false,
		"print the full report as JSON")
	reportCmd.Flags().IntVar(&top, "top", 10,
		"number of most frequent sequences to show")
	return reportCmd
}

func runReport(cmd *cobra.Command, asJSON bool, top int) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	rep, err := ioreport.Build(ctx, s.lex, cfg.JobsNumber, !asJSON)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	out := cmd.OutOrStdout()
	if !asJSON {
		return ioreport.Text(out, rep, top)
	}

	data, err := ioreport.JSON(rep)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
