// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gnames/gnlex/pkg/config"
	"github.com/jackc/pgx/v5"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnlex_test"
)

// GetTestConfig returns a configuration for integration tests. Database
// settings come from GNLEX_DATABASE_* variables or defaults, the database
// name is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if v := os.Getenv("GNLEX_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("GNLEX_DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v := os.Getenv("GNLEX_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("GNLEX_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SkipWithoutDatabase skips the test in short mode or when the test
// database does not answer.
func SkipWithoutDatabase(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := GetTestDatabaseConfig()
	connCfg, err := pgx.ParseConfig(
		"postgres://" + cfg.User + ":" + cfg.Password + "@" + cfg.Host +
			":" + strconv.Itoa(cfg.Port) + "/" + cfg.Database +
			"?sslmode=" + cfg.SSLMode,
	)
	if err != nil {
		t.Skipf("Skipping integration test: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		t.Skipf("Skipping integration test, no database: %v", err)
	}
	conn.Close(ctx)
}
