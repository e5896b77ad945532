// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"highscore-backend/internal/config"
	"highscore-backend/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// NopLogger returns a logger that discards all output.
func NopLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// DatabaseConfig points at a fresh SQLite file inside the test's temp dir.
func DatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	return config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "highscore.db"),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		QueryTimeout:    5 * time.Second,
		SlowThreshold:   time.Second,
		AutoMigrate:     true,
	}
}

// OpenDatabase connects to a migrated SQLite database that is closed when
// the test ends.
func OpenDatabase(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Connect(DatabaseConfig(t), NopLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
