// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnlex/pkg/db"
	"github.com/gnames/gnlex/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) db.SchemaManager {
	return &manager{operator: op}
}

// Migrate brings lexicon tables up to date using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := m.gorm(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}
	slog.Debug("Migrated PostgreSQL schema",
		"tables", len(schema.AllModels()))
	return nil
}

// Reset drops all lexicon tables and migrates from scratch.
func (m *manager) Reset(ctx context.Context) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}

	var tables []string
	for _, v := range schema.AllTables() {
		tables = append(tables, v.TableName())
	}
	if err := m.operator.DropTables(ctx, tables...); err != nil {
		return err
	}

	slog.Info("Dropped lexicon tables", "tables", len(tables))
	return m.Migrate(ctx)
}

func (m *manager) gorm(ctx context.Context) (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB.WithContext(ctx), nil
}
