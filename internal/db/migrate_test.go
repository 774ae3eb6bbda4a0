package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Running migrations again must succeed.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesBlobTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_blobs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_blobs", name)

	cols := map[string]bool{}
	rows, err := db.Query(`SELECT name FROM pragma_table_info('kv_blobs')`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var col string
		require.NoError(t, rows.Scan(&col))
		cols[col] = true
	}
	require.NoError(t, rows.Err())
	for _, c := range []string{"key", "value", "updated_at", "revision"} {
		assert.True(t, cols[c], "column %s should exist", c)
	}
}

// TestMigrate_UpgradesTableWithoutRevision simulates a database created before
// the revision column existed.
func TestMigrate_UpgradesTableWithoutRevision(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE kv_blobs (key TEXT PRIMARY KEY, value BLOB NOT NULL, updated_at TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO kv_blobs (key, value, updated_at) VALUES ('sleepData', '[]', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var value string
	var revision int
	err = db.QueryRow(`SELECT value, revision FROM kv_blobs WHERE key = 'sleepData'`).Scan(&value, &revision)
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
	assert.Equal(t, 1, revision)
}
