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
	"github.com/gnames/gnlex/internal/ioexport"
	app "github.com/gnames/gnlex/pkg"
	"github.com/gnames/gnlex/pkg/storage"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export the lexicon as JSON",
		Long: `Export all entries and stored inflected forms as JSON. Without a
file name the JSON goes to standard output.

Examples:
  gnlex export lexicon.json
  gnlex export | jq '.records[].headword'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args)
		},
	}
	return exportCmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	snap := storage.NewSnapshot(s.id, app.Version, s.lex, s.eng.Inflections)
	if len(args) == 0 {
		err = ioexport.Write(cmd.OutOrStdout(), snap)
	} else {
		err = ioexport.WriteFile(args[0], snap)
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if len(args) > 0 {
		gn.Info("Exported <em>%d</em> entries to <em>%s</em>",
			len(snap.Records), args[0])
	}
	return nil
}
