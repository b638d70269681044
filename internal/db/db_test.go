package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_MemoryRunsMigrations(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"programs", "levels", "skills", "progress_points", "level_maps", "map_nodes", "map_connections"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenDB_MigrateIsIdempotent(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.NoError(t, Migrate(database))
}

func TestOpenDB_ForeignKeysEnforced(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO levels (id, program_id, name, created_at, updated_at)
		VALUES ('l1', 'missing', 'Orphan', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err, "level insert without its program should violate the foreign key")
}
