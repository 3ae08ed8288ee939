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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlex/internal/ioimport"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var force bool
	var delimiter string

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add entries from a TSV or CSV word list",
		Long: `Add entries from a word list. Columns are headword, translation,
word type (name or id), definition and pronunciation. Only the headword is
required. Files with the .csv extension are comma-separated, others are
tab-separated, unless --delimiter is given.

Rows that break lexicon rules are skipped and listed, use --force to add
them anyway.

Examples:
  gnlex import words.tsv
  gnlex import words.txt --delimiter ";"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, force, delimiter)
		},
	}

	importCmd.Flags().BoolVarP(&force, "force", "f", false,
		"add entries that break lexicon rules")
	importCmd.Flags().StringVar(&delimiter, "delimiter", "",
		"field separator")
	return importCmd
}

func runImport(
	_ *cobra.Command,
	args []string,
	force bool,
	delimiter string,
) error {
	ctx := context.Background()
	start := time.Now()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	opts := []ioimport.Option{
		ioimport.OptForce(force),
		ioimport.OptProgress(true),
		ioimport.OptTypeResolver(func(name string) (int, bool) {
			wt, ok := s.eng.Grammar.TypeByName(name)
			return wt.ID, ok
		}),
	}
	if delimiter != "" {
		opts = append(opts, ioimport.OptComma([]rune(delimiter)[0]))
	}

	res, err := ioimport.New(s.lex, opts...).ImportFile(ctx, args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, v := range res.Skipped {
		gn.Warn("Line %d <em>%s</em> skipped:", v.Line, v.Headword)
		for _, r := range v.Reasons {
			gn.Warn("  %s", r)
		}
	}

	if res.Added > 0 {
		if err = s.save(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	gn.Info("Imported <em>%s</em> entries, skipped %d in %s",
		humanize.Comma(int64(res.Added)),
		len(res.Skipped),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}
