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

	"github.com/gnames/gnlex/internal/iogrammar"
	"github.com/gnames/gnlex/internal/iopgstore"
	"github.com/gnames/gnlex/internal/iosqlite"
	app "github.com/gnames/gnlex/pkg"
	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/lexicon"
	"github.com/gnames/gnlex/pkg/storage"
	"github.com/google/uuid"
)

// session is a lexicon loaded from storage together with its grammar.
type session struct {
	eng   *iogrammar.Engines
	lex   *lexicon.Lexicon
	store storage.Storage
	id    uuid.UUID
}

func newStorage(cfg *config.Config) storage.Storage {
	if cfg.Storage.Backend == "postgres" {
		return iopgstore.New(cfg.Database)
	}
	return iosqlite.New(cfg.SQLitePath())
}

// openSession loads the grammar and the stored lexicon. The caller must
// close the session.
func openSession(ctx context.Context, cfg *config.Config) (*session, error) {
	eng, err := iogrammar.Load(config.GrammarFilePath(cfg.HomeDir))
	if err != nil {
		return nil, err
	}

	lex := lexicon.New(
		cfg.Lexicon,
		lexicon.OptWordTypes(eng.Grammar),
		lexicon.OptInflector(eng.Inflections),
		lexicon.OptPronouncer(eng.Pronunciation),
	)

	store := newStorage(cfg)
	if err = store.Open(ctx); err != nil {
		return nil, err
	}

	snap, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	if err = snap.Apply(lex, eng.Inflections); err != nil {
		store.Close()
		return nil, err
	}

	res := &session{
		eng:   eng,
		lex:   lex,
		store: store,
		id:    snap.Meta.LexiconID,
	}
	return res, nil
}

// save writes the lexicon back. The first save of a new lexicon assigns
// its id.
func (s *session) save(ctx context.Context) error {
	snap := storage.NewSnapshot(s.id, app.Version, s.lex, s.eng.Inflections)
	if err := s.store.Save(ctx, snap); err != nil {
		return err
	}
	s.id = snap.Meta.LexiconID
	return nil
}

func (s *session) close() error {
	return s.store.Close()
}
