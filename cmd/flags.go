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
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gnlex/internal/iogrammar"
	"github.com/gnames/gnlex/pkg/config"
	"github.com/spf13/cobra"
)

// flagOptions converts persistent flags the user set into config options.
// They are applied after config.yaml and environment variables.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("backend") {
		s, _ := flags.GetString("backend")
		res = append(res, config.OptStorageBackend(s))
	}
	if flags.Changed("sqlite-path") {
		s, _ := flags.GetString("sqlite-path")
		res = append(res, config.OptStorageSQLitePath(s))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	if flags.Changed("ignore-case") {
		b, _ := flags.GetBool("ignore-case")
		res = append(res, config.OptLexiconIgnoreCase(b))
	}
	return res
}

// typeID resolves a word type given by name or by numeric id. Empty value
// means an untyped entry.
func typeID(eng *iogrammar.Engines, s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if id, err := strconv.Atoi(s); err == nil {
		return id, true
	}
	wt, ok := eng.Grammar.TypeByName(s)
	if !ok {
		return 0, false
	}
	return wt.ID, true
}

// parseID reads a positive entry id from a command argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid entry id", s)
	}
	return id, nil
}
