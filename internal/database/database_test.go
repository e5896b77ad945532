package database_test

import (
	"errors"
	"path/filepath"
	"testing"

	"highscore-backend/internal/config"
	"highscore-backend/internal/database"
	"highscore-backend/internal/models"
	"highscore-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectMigratesSchema(t *testing.T) {
	db := testutil.OpenDatabase(t)

	assert.Equal(t, config.DriverSQLite, db.Driver())
	assert.NoError(t, db.HealthCheck())

	for _, table := range []string{"game", "genre", "game_genre", "score"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Game{}, "idx_game_url_slug"))
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := testutil.OpenDatabase(t)

	require.NoError(t, db.Migrate(testutil.NopLogger()))
	require.NoError(t, db.Migrate(testutil.NopLogger()))
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db := testutil.OpenDatabase(t)

	err := db.Create(&models.Score{GameID: 42, Player: "Ann", Points: 1}).Error
	assert.Error(t, err)
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	cfg := testutil.DatabaseConfig(t)
	cfg.Driver = "oracle"

	_, err := database.Connect(cfg, testutil.NopLogger())
	assert.Error(t, err)
}

func TestConnectReportsUnreachableStore(t *testing.T) {
	cfg := testutil.DatabaseConfig(t)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "missing", "dir", "highscore.db")

	_, err := database.Connect(cfg, testutil.NopLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrStoreUnavailable), err.Error())
}

func TestLowerFuncFoldsUnicodeOnSQLite(t *testing.T) {
	db := testutil.OpenDatabase(t)

	var lowered string
	err := db.Raw("SELECT "+db.LowerFunc()+"(?)", "ÉLITE Dangerous").Scan(&lowered).Error
	require.NoError(t, err)
	assert.Equal(t, "élite dangerous", lowered)
}
