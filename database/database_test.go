package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_InMemory(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.InitSchema())

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'saved_movies'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInitSchema_Idempotent(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.InitSchema())
	assert.NoError(t, db.InitSchema())
}
