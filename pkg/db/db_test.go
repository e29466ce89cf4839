package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (db *DB, cleanup func()) {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	}

	db, err = New(cfg)
	require.NoError(t, err)

	cleanup = func() {
		db.Close()
		os.Remove(tmpFile.Name())
	}

	return db, cleanup
}

func TestDB_InitSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// schema should already be initialized by New()
	var count int
	err := db.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('user_settings', 'haptic_patterns', 'feedback_events')
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDB_SeedsPatternCatalog(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	var count int
	err := db.conn.Get(&count, "SELECT COUNT(*) FROM haptic_patterns")
	require.NoError(t, err)
	assert.Equal(t, 9, count)
}

func TestDB_InitSchemaIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// running the schema again must not fail or duplicate seed rows
	require.NoError(t, db.InitSchema(context.Background()))

	var count int
	err := db.conn.Get(&count, "SELECT COUNT(*) FROM haptic_patterns")
	require.NoError(t, err)
	assert.Equal(t, 9, count)
}

func TestDB_Ping(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, db.Ping(context.Background()))
}
