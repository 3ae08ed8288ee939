// Package iopgstore keeps a lexicon in PostgreSQL. Tables are created by
// GORM AutoMigrate, rows are written with COPY.
package iopgstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gnlex/internal/iodb"
	"github.com/gnames/gnlex/internal/ioschema"
	"github.com/gnames/gnlex/pkg/config"
	"github.com/gnames/gnlex/pkg/db"
	"github.com/gnames/gnlex/pkg/schema"
	"github.com/gnames/gnlex/pkg/storage"
	"github.com/jackc/pgx/v5"
)

type pgStore struct {
	cfg      config.DatabaseConfig
	operator db.Operator
}

// New creates a PostgreSQL storage (without connecting).
func New(cfg config.DatabaseConfig) storage.Storage {
	return &pgStore{cfg: cfg, operator: iodb.NewPgxOperator()}
}

// Open connects to the database and migrates lexicon tables.
func (s *pgStore) Open(ctx context.Context) error {
	if err := s.operator.Connect(ctx, &s.cfg); err != nil {
		return err
	}
	if err := ioschema.NewManager(s.operator).Migrate(ctx); err != nil {
		s.operator.Close()
		return err
	}
	return nil
}

func (s *pgStore) Close() error {
	return s.operator.Close()
}

// Save replaces all rows in one transaction.
func (s *pgStore) Save(ctx context.Context, snap *storage.Snapshot) error {
	pool := s.operator.Pool()
	if pool == nil {
		return NotOpenError()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return SaveError(s.cfg.Database, err)
	}
	// no-op after Commit
	defer tx.Rollback(ctx)

	tables := schema.FromSnapshot(snap).Tables()
	for _, t := range tables {
		q := "DELETE FROM " + pgx.Identifier{t.Table}.Sanitize()
		if _, err = tx.Exec(ctx, q); err != nil {
			return SaveError(s.cfg.Database, err)
		}
	}

	for _, t := range tables {
		if err = s.copy(ctx, tx, t); err != nil {
			return SaveError(s.cfg.Database, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return SaveError(s.cfg.Database, err)
	}

	slog.Info("Saved lexicon",
		"database", s.cfg.Database,
		"entries", len(snap.Records),
		"inflections", len(snap.Inflections),
	)
	return nil
}

// copy sends rows in chunks of BatchSize.
func (s *pgStore) copy(ctx context.Context, tx pgx.Tx, t schema.TableRows) error {
	batch := max(s.cfg.BatchSize, 1)
	for start := 0; start < len(t.Values); start += batch {
		end := min(start+batch, len(t.Values))
		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{t.Table},
			t.Columns,
			pgx.CopyFromRows(t.Values[start:end]),
		)
		if err != nil {
			return fmt.Errorf("%s: %w", t.Table, err)
		}
	}
	return nil
}

// Load reads all rows. A database without saved lexicon gives an empty
// snapshot.
func (s *pgStore) Load(ctx context.Context) (*storage.Snapshot, error) {
	if s.operator.Pool() == nil {
		return nil, NotOpenError()
	}

	rows, err := s.load(ctx)
	if err != nil {
		return nil, LoadError(s.cfg.Database, err)
	}

	res, err := rows.Snapshot()
	if err != nil {
		return nil, LoadError(s.cfg.Database, err)
	}

	if err = res.CheckVersion(config.MinVersionLexicon); err != nil {
		return nil, VersionError(s.cfg.Database, res.Meta.Version, err)
	}

	slog.Debug("Loaded lexicon",
		"database", s.cfg.Database, "entries", len(res.Records))
	return res, nil
}

func (s *pgStore) load(ctx context.Context) (schema.Rows, error) {
	var res schema.Rows
	pool := s.operator.Pool()

	q := selectAll(schema.Meta{}) + " WHERE id = 1"
	err := pool.QueryRow(ctx, q).Scan(
		&res.Meta.ID, &res.Meta.LexiconID, &res.Meta.Version, &res.Meta.SavedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return res, nil
	}
	if err != nil {
		return res, err
	}

	res.Entries, err = query(ctx, s, schema.Entry{},
		func(row pgx.CollectableRow) (schema.Entry, error) {
			var e schema.Entry
			err := row.Scan(
				&e.ID, &e.Headword, &e.Translation, &e.Definition, &e.TypeID,
				&e.Pronunciation, &e.PronunciationOverride, &e.RuleOverride,
				&e.AutoInflectionOverride,
			)
			return e, err
		})
	if err != nil {
		return res, err
	}

	res.ClassValues, err = query(ctx, s, schema.EntryClassValue{},
		func(row pgx.CollectableRow) (schema.EntryClassValue, error) {
			var v schema.EntryClassValue
			err := row.Scan(&v.EntryID, &v.AttributeID, &v.ValueID)
			return v, err
		})
	if err != nil {
		return res, err
	}

	res.ClassTexts, err = query(ctx, s, schema.EntryClassText{},
		func(row pgx.CollectableRow) (schema.EntryClassText, error) {
			var v schema.EntryClassText
			err := row.Scan(&v.EntryID, &v.AttributeID, &v.Text)
			return v, err
		})
	if err != nil {
		return res, err
	}

	res.Inflections, err = query(ctx, s, schema.InflectionValue{},
		func(row pgx.CollectableRow) (schema.InflectionValue, error) {
			var v schema.InflectionValue
			err := row.Scan(&v.EntryID, &v.CombinationID, &v.Value)
			return v, err
		})
	return res, err
}

func selectAll(model schema.DDLGenerator) string {
	return fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(schema.Columns(model), ", "), model.TableName())
}

func query[T any](
	ctx context.Context,
	s *pgStore,
	model schema.DDLGenerator,
	scan pgx.RowToFunc[T],
) ([]T, error) {
	rows, err := s.operator.Pool().Query(ctx, selectAll(model)+" ORDER BY 1, 2")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", model.TableName(), err)
	}
	res, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", model.TableName(), err)
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res, nil
}
