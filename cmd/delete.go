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

// getDeleteCmd returns the delete command.
func getDeleteCmd() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete entries from the lexicon",
		Long: `Delete entries and their stored inflected forms.

Examples:
  gnlex delete 12
  gnlex delete 12 13 40`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args)
		},
	}
	return deleteCmd
}

func runDelete(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	ids := make([]int, len(args))
	for i, v := range args {
		id, err := parseID(v)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		ids[i] = id
	}

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	for _, id := range ids {
		if err = s.lex.Delete(id); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	if err = s.save(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Deleted <em>%d</em> entries", len(ids))
	return nil
}
