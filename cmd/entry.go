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
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/grammar"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/spf13/cobra"
)

// entryFlags are the fields of an entry given on the command line.
type entryFlags struct {
	headword      string
	translation   string
	definition    string
	wordType      string
	pronunciation string
	classes       map[string]string
	forms         map[string]string
	noAuto        bool
	force         bool
}

func (ef *entryFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&ef.translation, "translation", "t", "",
		"comma-separated glosses")
	f.StringVarP(&ef.definition, "definition", "d", "",
		"definition, may contain HTML markup")
	f.StringVarP(&ef.wordType, "type", "y", "",
		"word type name or id")
	f.StringVarP(&ef.pronunciation, "pronunciation", "p", "",
		"pronunciation that overrides the generated one")
	f.StringToStringVarP(&ef.classes, "class", "c", nil,
		"class values, for example gender=animate")
	f.StringToStringVar(&ef.forms, "form", nil,
		"manually stored inflected forms, for example plural=lumin")
	f.BoolVar(&ef.noAuto, "no-auto", false,
		"do not generate inflected forms automatically")
	f.BoolVarP(&ef.force, "force", "f", false,
		"save the entry even if it breaks lexicon rules")
}

// apply copies flags the user set into the entry.
func (ef *entryFlags) apply(
	cmd *cobra.Command,
	s *session,
	e *lexicon.Entry,
) error {
	f := cmd.Flags()
	if f.Changed("headword") {
		e.Headword = strings.TrimSpace(ef.headword)
	}
	if f.Changed("translation") {
		e.Translation = strings.TrimSpace(ef.translation)
	}
	if f.Changed("definition") {
		e.Definition = strings.TrimSpace(ef.definition)
	}
	if f.Changed("type") {
		id, ok := typeID(s.eng, ef.wordType)
		if !ok {
			return fmt.Errorf("unknown word type %q", ef.wordType)
		}
		e.TypeID = id
	}
	if f.Changed("pronunciation") {
		e.Pronunciation = strings.TrimSpace(ef.pronunciation)
		e.PronunciationOverride = e.Pronunciation != ""
	}
	if f.Changed("no-auto") {
		e.AutoInflectionOverride = ef.noAuto
	}
	return applyClasses(s.eng.Grammar, e, ef.classes)
}

// applyClasses sets class values given by class and value names. An empty
// value removes the class from the entry.
func applyClasses(g *grammar.Grammar, e *lexicon.Entry, classes map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(classes)) {
		val := strings.TrimSpace(classes[name])
		idx := slices.IndexFunc(g.Classes, func(c grammar.Class) bool {
			return strings.EqualFold(c.Name, name)
		})
		if idx < 0 {
			return fmt.Errorf("unknown class %q", name)
		}
		c := g.Classes[idx]

		if e.ClassValues != nil {
			delete(e.ClassValues, c.ID)
		}
		if e.ClassTexts != nil {
			delete(e.ClassTexts, c.ID)
		}
		if val == "" {
			continue
		}

		if c.FreeText {
			if e.ClassTexts == nil {
				e.ClassTexts = make(map[int]string)
			}
			e.ClassTexts[c.ID] = val
			continue
		}

		vi := slices.IndexFunc(c.Values, func(v grammar.ClassValue) bool {
			return strings.EqualFold(v.Name, val)
		})
		if vi < 0 {
			return fmt.Errorf("class %s has no value %q", c.Name, val)
		}
		if e.ClassValues == nil {
			e.ClassValues = make(map[int]int)
		}
		e.ClassValues[c.ID] = c.Values[vi].ID
	}
	return nil
}

// vet checks the entry against lexicon rules. With force a pattern
// mismatch turns into a rule override and other problems are reported but
// accepted.
func (s *session) vet(e *lexicon.Entry, force bool) error {
	rep := s.lex.Check(*e, s.lex.Policy())
	if rep.ProceedOverride && force {
		e.RuleOverride = true
		rep = s.lex.Check(*e, s.lex.Policy())
	}

	for _, w := range rep.Warnings {
		gn.Warn(w)
	}
	if rep.IsLegal() {
		return nil
	}

	for _, m := range rep.Messages() {
		gn.Warn(m)
	}
	if force {
		return nil
	}
	return fmt.Errorf("entry %q breaks lexicon rules", e.Headword)
}

// storeForms saves manually given inflected forms and warns about missing
// mandatory ones.
func (s *session) storeForms(e lexicon.Entry, forms map[string]string) {
	combos := s.eng.Inflections.CombinationIDs(e.TypeID)
	for _, k := range slices.Sorted(maps.Keys(forms)) {
		if !slices.Contains(combos, k) {
			gn.Warn("Word type of <em>%s</em> has no form <em>%s</em>", e.Headword, k)
			continue
		}
		v := strings.TrimSpace(forms[k])
		if v == "" {
			s.eng.Inflections.RemoveValues(e.ID, []string{k})
			continue
		}
		s.eng.Inflections.SetValue(e.ID, k, v)
	}

	wt, ok := s.eng.Grammar.WordType(e.TypeID)
	if !ok {
		return
	}
	if msg := s.eng.Inflections.RequirementsMet(e, &wt); msg != "" {
		gn.Warn(msg)
	}
}

func typeName(s *session, id int) string {
	if id == 0 {
		return ""
	}
	if wt, ok := s.eng.Grammar.WordType(id); ok {
		return wt.Name
	}
	return fmt.Sprintf("type %d", id)
}

func printList(w io.Writer, s *session, ee []lexicon.Entry) {
	for _, e := range ee {
		fmt.Fprintf(w, "%6d  %-20s %-12s %s\n",
			e.ID, e.Headword, typeName(s, e.TypeID), e.Translation)
	}
}

// printEntry shows every field of the entry with its inflected forms.
func printEntry(w io.Writer, s *session, e lexicon.Entry) {
	fmt.Fprintf(w, "ID:            %d\n", e.ID)
	fmt.Fprintf(w, "Headword:      %s\n", e.Headword)
	fmt.Fprintf(w, "Translation:   %s\n", e.Translation)
	if e.TypeID != 0 {
		fmt.Fprintf(w, "Type:          %s\n", typeName(s, e.TypeID))
	}
	if e.Pronunciation != "" {
		fmt.Fprintf(w, "Pronunciation: /%s/\n", e.Pronunciation)
	}
	if e.Definition != "" {
		def, err := lexicon.PlainText(e.Definition)
		if err != nil {
			def = e.Definition
		}
		fmt.Fprintf(w, "Definition:    %s\n", def)
	}

	for _, c := range s.eng.Grammar.Classes {
		if v, ok := e.ClassTexts[c.ID]; ok {
			fmt.Fprintf(w, "%-14s %s\n", c.Name+":", v)
			continue
		}
		if v, ok := e.ClassValues[c.ID]; ok {
			name := fmt.Sprintf("%d", v)
			for _, cv := range c.Values {
				if cv.ID == v {
					name = cv.Name
				}
			}
			fmt.Fprintf(w, "%-14s %s\n", c.Name+":", name)
		}
	}

	stored := s.eng.Inflections.StoredValues(e.ID)
	for _, k := range s.eng.Inflections.CombinationIDs(e.TypeID) {
		form, ok := stored[k]
		if !ok && !e.AutoInflectionOverride {
			form = s.eng.Inflections.Decline(e.TypeID, k, e.Headword)
		}
		if form != "" {
			fmt.Fprintf(w, "  %-12s %s\n", k+":", form)
		}
	}
}
