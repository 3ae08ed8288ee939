package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/gnlex/internal/iodb"
	"github.com/gnames/gnlex/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These are integration tests that require PostgreSQL with a gnlex_test
// database. Credentials come from GNLEX_DATABASE_* variables. They are
// skipped with -short or when the database is unreachable.

func TestDSN(t *testing.T) {
	cfg := iotesting.GetTestDatabaseConfig()
	dsn := iodb.DSN(cfg)
	assert.Contains(t, dsn, "/gnlex_test?sslmode=")
}

func TestPgxOperatorConnect(t *testing.T) {
	iotesting.SkipWithoutDatabase(t)

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err)
	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPgxOperatorNotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	assert.Nil(t, op.Pool())
	_, err := op.TableExists(ctx, "entries")
	assert.Error(t, err)
	assert.Error(t, op.DropTables(ctx, "entries"))
	assert.NoError(t, op.Close())
}

func TestPgxOperatorDropTables(t *testing.T) {
	iotesting.SkipWithoutDatabase(t)

	op := iodb.NewPgxOperator()
	ctx := context.Background()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	defer op.Close()

	_, err := op.Pool().Exec(ctx,
		"CREATE TABLE IF NOT EXISTS gnlex_drop_test (id INTEGER)")
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "gnlex_drop_test")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, op.DropTables(ctx, "gnlex_drop_test"))
	exists, err = op.TableExists(ctx, "gnlex_drop_test")
	require.NoError(t, err)
	assert.False(t, exists)
}
