package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"
)

func TestNewDB(t *testing.T) {
	t.Run("InvalidPath", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "test-db")
		assert.NoError(t, err)
		defer os.RemoveAll(tempDir)

		db, err := NewDB(tempDir)
		assert.NoError(t, err) // NewDB doesn't return an error for a directory

		err = db.D.Ping()
		assert.Error(t, err)
	})

	t.Run("ValidPath", func(t *testing.T) {
		db, err := NewDB(":memory:")
		assert.NoError(t, err)
		assert.NotNil(t, db)
		defer db.Close(context.Background())

		err = db.D.Ping()
		assert.NoError(t, err)
	})
}

func TestDB_createTables(t *testing.T) {
	db, err := NewDB(":memory:")
	assert.NoError(t, err)
	defer db.Close(context.Background())

	t.Run("Success", func(t *testing.T) {
		err := db.createTables(context.Background())
		assert.NoError(t, err)

		rows, err := db.D.Query("SELECT name FROM sqlite_master WHERE type='table'")
		assert.NoError(t, err)
		defer rows.Close()

		var tables []string
		for rows.Next() {
			var name string
			assert.NoError(t, rows.Scan(&name))
			tables = append(tables, name)
		}

		assert.Contains(t, tables, "session")
	})

	t.Run("Idempotent", func(t *testing.T) {
		assert.NoError(t, db.createTables(context.Background()))
		assert.NoError(t, db.createTables(context.Background()))
	})
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 0, 123_000_000, time.Local)
	ts := ToTimeStr(now)
	parsed := FromTimeStr(ts)
	assert.True(t, now.Equal(parsed))
}
