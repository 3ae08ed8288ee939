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
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/spf13/cobra"
)

type searchFlags struct {
	headword      string
	translation   string
	definition    string
	wordType      string
	pronunciation string
	json          bool
}

// getSearchCmd returns the search command.
func getSearchCmd() *cobra.Command {
	var sf searchFlags

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Find entries by several fields",
		Long: `Find entries that match every given field. A field may hold
several comma-separated alternatives.

Headword alternatives are regular expressions that have to match the whole
headword or one of its inflected forms, or plain prefixes. Translation,
definition and pronunciation alternatives match as substrings. Definitions
are searched without markup and ignoring case.

Examples:
  gnlex search -w "lu.*"
  gnlex search -t "light, fire" -y noun
  gnlex search -d "water" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, &sf)
		},
	}

	f := searchCmd.Flags()
	f.StringVarP(&sf.headword, "headword", "w", "", "headword patterns")
	f.StringVarP(&sf.translation, "translation", "t", "", "glosses")
	f.StringVarP(&sf.definition, "definition", "d", "", "definition words")
	f.StringVarP(&sf.wordType, "type", "y", "", "word type name or id")
	f.StringVarP(&sf.pronunciation, "pronunciation", "p", "",
		"pronunciation fragments")
	f.BoolVar(&sf.json, "json", false, "print results as JSON")
	return searchCmd
}

func runSearch(cmd *cobra.Command, sf *searchFlags) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	q := lexicon.Entry{
		Headword:      sf.headword,
		Translation:   sf.translation,
		Definition:    sf.definition,
		Pronunciation: sf.pronunciation,
	}
	id, ok := typeID(s.eng, sf.wordType)
	if !ok {
		err = fmt.Errorf("unknown word type %q", sf.wordType)
		gn.PrintErrorMessage(err)
		return err
	}
	q.TypeID = id

	res, err := s.lex.Filter(q)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return printResults(cmd, s, res, sf.json)
}

func printResults(
	cmd *cobra.Command,
	s *session,
	ee []lexicon.Entry,
	asJSON bool,
) error {
	out := cmd.OutOrStdout()
	if !asJSON {
		printList(out, s, ee)
		gn.Info("Found <em>%d</em> entries", len(ee))
		return nil
	}

	rr := make([]lexicon.Record, len(ee))
	for i, e := range ee {
		rr[i] = lexicon.NewRecord(e)
	}
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(rr)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// getSuggestCmd returns the suggest command.
func getSuggestCmd() *cobra.Command {
	var asJSON bool

	suggestCmd := &cobra.Command{
		Use:   "suggest TEXT",
		Short: "Suggest entries related to a word",
		Long: `Suggest entries related to the text. Entries with the text as
their headword come first, then entries with headwords containing the text,
then entries with the text in their definitions.

Examples:
  gnlex suggest lum`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args, asJSON)
		},
	}

	suggestCmd.Flags().BoolVar(&asJSON, "json", false,
		"print results as JSON")
	return suggestCmd
}

func runSuggest(cmd *cobra.Command, args []string, asJSON bool) error {
	ctx := context.Background()

	s, err := openSession(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.close()

	res := s.lex.Suggest(strings.Join(args, " "))
	return printResults(cmd, s, res, asJSON)
}
