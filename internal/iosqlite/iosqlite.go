// Package iosqlite keeps a lexicon in a single SQLite file.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/schema"
	"github.com/gnames/gnlex/pkg/storage"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

type sqliteStore struct {
	path string
	db   *sql.DB
}

// New creates a storage for the SQLite file at path. Use ":memory:" for a
// transient database.
func New(path string) storage.Storage {
	return &sqliteStore{path: path}
}

// Open opens the file and creates missing tables.
func (s *sqliteStore) Open(ctx context.Context) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return OpenError(s.path, err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return OpenError(s.path, err)
	}

	for _, t := range schema.AllTables() {
		stmts := append([]string{t.TableDDL()}, t.IndexDDL()...)
		for _, q := range stmts {
			if _, err = db.ExecContext(ctx, q); err != nil {
				db.Close()
				return SchemaError(s.path, err)
			}
		}
	}

	slog.Debug("Opened SQLite lexicon", "path", s.path)
	s.db = db
	return nil
}

func (s *sqliteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save replaces all rows in one transaction.
func (s *sqliteStore) Save(ctx context.Context, snap *storage.Snapshot) error {
	if s.db == nil {
		return NotOpenError()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveError(s.path, err)
	}
	// no-op after Commit
	defer tx.Rollback()

	if err = s.save(ctx, tx, schema.FromSnapshot(snap)); err != nil {
		return SaveError(s.path, err)
	}

	if err = tx.Commit(); err != nil {
		return SaveError(s.path, err)
	}

	slog.Info("Saved lexicon",
		"path", s.path,
		"entries", len(snap.Records),
		"inflections", len(snap.Inflections),
	)
	return nil
}

func (s *sqliteStore) save(ctx context.Context, tx *sql.Tx, rows schema.Rows) error {
	tables := rows.Tables()
	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+t.Table); err != nil {
			return err
		}
	}

	for _, t := range tables {
		if err := insert(ctx, tx, t); err != nil {
			return err
		}
	}
	return nil
}

func insert(ctx context.Context, tx *sql.Tx, t schema.TableRows) error {
	if len(t.Values) == 0 {
		return nil
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Table,
		strings.Join(t.Columns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", "),
	)

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range t.Values {
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("%s: %w", t.Table, err)
		}
	}
	return nil
}

// Load reads all rows. A file without saved lexicon gives an empty
// snapshot.
func (s *sqliteStore) Load(ctx context.Context) (*storage.Snapshot, error) {
	if s.db == nil {
		return nil, NotOpenError()
	}

	rows, err := s.load(ctx)
	if err != nil {
		return nil, LoadError(s.path, err)
	}

	res, err := rows.Snapshot()
	if err != nil {
		return nil, LoadError(s.path, err)
	}

	if err = res.CheckVersion(config.MinVersionLexicon); err != nil {
		return nil, VersionError(s.path, res.Meta.Version, err)
	}

	slog.Debug("Loaded lexicon", "path", s.path, "entries", len(res.Records))
	return res, nil
}

func (s *sqliteStore) load(ctx context.Context) (schema.Rows, error) {
	var res schema.Rows

	q := selectAll(schema.Meta{}) + " WHERE id = 1"
	err := s.db.QueryRowContext(ctx, q).Scan(
		&res.Meta.ID, &res.Meta.LexiconID, &res.Meta.Version, &res.Meta.SavedAt,
	)
	if err == sql.ErrNoRows {
		return res, nil
	}
	if err != nil {
		return res, err
	}

	err = query(ctx, s.db, schema.Entry{}, func(r *sql.Rows) error {
		var e schema.Entry
		err := r.Scan(
			&e.ID, &e.Headword, &e.Translation, &e.Definition, &e.TypeID,
			&e.Pronunciation, &e.PronunciationOverride, &e.RuleOverride,
			&e.AutoInflectionOverride,
		)
		res.Entries = append(res.Entries, e)
		return err
	})
	if err != nil {
		return res, err
	}

	err = query(ctx, s.db, schema.EntryClassValue{}, func(r *sql.Rows) error {
		var v schema.EntryClassValue
		err := r.Scan(&v.EntryID, &v.AttributeID, &v.ValueID)
		res.ClassValues = append(res.ClassValues, v)
		return err
	})
	if err != nil {
		return res, err
	}

	err = query(ctx, s.db, schema.EntryClassText{}, func(r *sql.Rows) error {
		var v schema.EntryClassText
		err := r.Scan(&v.EntryID, &v.AttributeID, &v.Text)
		res.ClassTexts = append(res.ClassTexts, v)
		return err
	})
	if err != nil {
		return res, err
	}

	err = query(ctx, s.db, schema.InflectionValue{}, func(r *sql.Rows) error {
		var v schema.InflectionValue
		err := r.Scan(&v.EntryID, &v.CombinationID, &v.Value)
		res.Inflections = append(res.Inflections, v)
		return err
	})
	return res, err
}

func selectAll(model schema.DDLGenerator) string {
	return fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(schema.Columns(model), ", "), model.TableName())
}

func query(
	ctx context.Context,
	db *sql.DB,
	model schema.DDLGenerator,
	scan func(*sql.Rows) error,
) error {
	rows, err := db.QueryContext(ctx, selectAll(model)+" ORDER BY 1, 2")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return fmt.Errorf("%s: %w", model.TableName(), err)
		}
	}
	return rows.Err()
}
