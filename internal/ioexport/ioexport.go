// Package ioexport writes a lexicon snapshot as JSON.
package ioexport

import (
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlex/pkg/storage"
)

// Write encodes the snapshot as indented JSON.
func Write(w io.Writer, s *storage.Snapshot) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(s)
	if err != nil {
		return WriteError("output", err)
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return WriteError("output", err)
	}
	return nil
}

// WriteFile saves the snapshot to path, replacing an existing file.
func WriteFile(path string, s *storage.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}

	if err = Write(f, s); err != nil {
		f.Close()
		return WriteError(path, err)
	}
	if err = f.Close(); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Exported lexicon", "path", path, "entries", len(s.Records))
	return nil
}

// Read decodes a snapshot written by Write.
func Read(r io.Reader) (*storage.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var res storage.Snapshot
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
