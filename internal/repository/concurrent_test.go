package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "concurrent_test.db")
	database, err := db.OpenDB(dbPath)
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringMapReplace verifies that readers never see a
// half-written map while Replace runs inside transactions.
func TestConcurrentAccess_ReadDuringMapReplace(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	uow := db.NewSQLiteUnitOfWork(database)

	lvl := createLevel(t, database)
	skills := createSkills(t, database, lvl, "A", "B", "C")
	full := testutil.NewTestChainMap(skills[0].ID, skills[1].ID, skills[2].ID)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			m := full.Clone()
			m.Nodes[0].X = float64(i)
			err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				return NewSQLiteLevelMapRepo(tx).Replace(ctx, lvl.ID, m)
			})
			if err != nil {
				t.Errorf("writer: replace %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				var got *domain.LevelMap
				err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					var err error
					got, err = NewSQLiteLevelMapRepo(tx).Get(ctx, lvl.ID)
					return err
				})
				if err != nil {
					t.Errorf("reader %d: get: %v", reader, err)
					return
				}
				if got != nil && (len(got.Nodes) != 3 || len(got.Connections) != 2) {
					t.Errorf("reader %d: partial map %s", reader, fmt.Sprint(len(got.Nodes), len(got.Connections)))
				}
			}
		}(r)
	}

	wg.Wait()

	final, err := NewSQLiteLevelMapRepo(database).Get(ctx, lvl.ID)
	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Equal(t, float64(19), final.Nodes[0].X)
}
