// Package ioimport adds entries to a lexicon from TSV or CSV word lists.
//
// Columns are headword, translation, type, definition and pronunciation.
// Only the headword is required, missing trailing columns are allowed.
// A first row with "headword" in the first column is treated as a header.
package ioimport

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/gnames/gnlib"
)

// TypeResolver finds the id of a word type by its name.
type TypeResolver func(name string) (int, bool)

// Skipped is a row that was not added to the lexicon.
type Skipped struct {
	Line     int
	Headword string
	Reasons  []string
}

// Result summarizes an import.
type Result struct {
	Added   int
	Skipped []Skipped
}

// Importer reads word lists into a lexicon.
type Importer struct {
	lex      *lexicon.Lexicon
	types    TypeResolver
	comma    rune
	force    bool
	progress bool
}

// Option configures an Importer.
type Option func(*Importer)

// OptTypeResolver sets how type names are turned into ids. Numeric types
// are always accepted as ids.
func OptTypeResolver(tr TypeResolver) Option {
	return func(im *Importer) {
		im.types = tr
	}
}

// OptComma sets the field separator. By default it is a comma for .csv
// files and a tab otherwise.
func OptComma(r rune) Option {
	return func(im *Importer) {
		im.comma = r
	}
}

// OptForce adds illegal entries instead of skipping them.
func OptForce(b bool) Option {
	return func(im *Importer) {
		im.force = b
	}
}

// OptProgress shows a progress bar.
func OptProgress(b bool) Option {
	return func(im *Importer) {
		im.progress = b
	}
}

// New creates an Importer for the lexicon.
func New(l *lexicon.Lexicon, opts ...Option) *Importer {
	res := &Importer{lex: l}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// ImportFile imports the word list at path.
func (im *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, ReadError(path, err)
	}
	defer f.Close()

	comma := im.comma
	if comma == 0 {
		comma = '\t'
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			comma = ','
		}
	}
	return im.Import(ctx, path, f, comma)
}

// Import reads rows from r. The name is used in messages only.
func (im *Importer) Import(
	ctx context.Context,
	name string,
	r io.Reader,
	comma rune,
) (Result, error) {
	var res Result

	rows, err := readRows(r, comma)
	if err != nil {
		return res, ReadError(name, err)
	}
	if len(rows) > 0 &&
		strings.EqualFold(strings.TrimSpace(rows[0].fields[0]), "headword") {
		rows = rows[1:]
	}

	var bar *pb.ProgressBar
	if im.progress {
		bar = pb.Full.Start(len(rows))
		bar.Set("prefix", "Importing entries: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	policy := im.lex.Policy()
	for _, row := range rows {
		if bar != nil {
			bar.Increment()
		}
		if err = ctx.Err(); err != nil {
			return res, err
		}
		if strings.TrimSpace(row.fields[0]) == "" {
			continue
		}
		line := row.line

		e, err := im.entry(row.fields)
		if err != nil {
			return res, RecordError(name, line, err)
		}

		if !im.force {
			rep := im.lex.Check(e, policy)
			if !rep.IsLegal() {
				res.Skipped = append(res.Skipped, Skipped{
					Line:     line,
					Headword: e.Headword,
					Reasons:  rep.Messages(),
				})
				continue
			}
		}

		if _, err = im.lex.AddEntry(e); err != nil {
			return res, RecordError(name, line, err)
		}
		res.Added++
	}

	slog.Info("Imported word list",
		"file", name, "added", res.Added, "skipped", len(res.Skipped))
	return res, nil
}

type record struct {
	line   int
	fields []string
}

// readRows reads all records keeping their line numbers. Blank lines are
// skipped by the csv reader.
func readRows(r io.Reader, comma rune) ([]record, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var res []record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		res = append(res, record{line: line, fields: fields})
	}
}

func (im *Importer) entry(row []string) (lexicon.Entry, error) {
	field := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(gnlib.FixUtf8(row[i]))
	}

	res := lexicon.Entry{
		Headword:    field(0),
		Translation: field(1),
		Definition:  field(3),
	}

	if t := field(2); t != "" {
		id, err := im.typeID(t)
		if err != nil {
			return res, err
		}
		res.TypeID = id
	}

	if p := field(4); p != "" {
		res.Pronunciation = p
		res.PronunciationOverride = true
	}
	return res, nil
}

func (im *Importer) typeID(t string) (int, error) {
	if id, err := strconv.Atoi(t); err == nil {
		return id, nil
	}
	if im.types != nil {
		if id, ok := im.types(t); ok {
			return id, nil
		}
	}
	return 0, errors.New("unknown word type " + strconv.Quote(t))
}
