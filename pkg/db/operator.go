// Package db defines the contract for PostgreSQL connection management.
package db

import (
	"context"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages a PostgreSQL connection pool. Storage and schema
// components run their own SQL through Pool().
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. It is nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tables ...string) error
}

// SchemaManager keeps the PostgreSQL schema of a lexicon up to date.
type SchemaManager interface {
	// Migrate creates missing tables and columns.
	Migrate(ctx context.Context) error

	// Reset drops lexicon tables and creates them anew.
	Reset(ctx context.Context) error
}
