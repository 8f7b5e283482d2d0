package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "phonet.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := NewStore("")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	assert.Contains(t, store.Path(), filepath.Join(".phonet", "data", "phonet.db"))
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	var tableExists int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='inventories'",
	).Scan(&tableExists)
	require.NoError(t, err)
	assert.Equal(t, 1, tableExists)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.InventoryStore().Save(context.Background(), domain.Inventory{ID: "inv-1", Name: "Kept"}))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	inv, err := store.InventoryStore().Get(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "Kept", inv.Name)
}

func TestStore_Migrate_FailureRollsBack(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"002_broken.up.sql": {Data: []byte("CREATE TABLE broken (id TEXT); NOT VALID SQL;")},
	}

	err := store.migrate(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.up.sql")

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestInventoryStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t).InventoryStore()
	ctx := context.Background()
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	inv := domain.Inventory{
		ID:          "inv-1",
		Name:        "Spanish",
		Description: "Castilian",
		Symbols:     []string{"p", "b", "β", "t͡ʃ"},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	require.NoError(t, store.Save(ctx, inv))

	got, err := store.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "Spanish", got.Name)
	assert.Equal(t, "Castilian", got.Description)
	assert.Equal(t, []string{"p", "b", "β", "t͡ʃ"}, got.Symbols)
	assert.False(t, got.Builtin)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
	assert.WithinDuration(t, created, got.UpdatedAt, time.Second)
}

func TestInventoryStore_Save_DefaultsTimestamps(t *testing.T) {
	store := setupTestStore(t).InventoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Inventory{ID: "inv-1", Name: "Bare"}))

	got, err := store.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Empty(t, got.Symbols)
}

func TestInventoryStore_Save_Update(t *testing.T) {
	store := setupTestStore(t).InventoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Inventory{ID: "inv-1", Name: "Spanish", Symbols: []string{"p"}}))
	require.NoError(t, store.Save(ctx, domain.Inventory{ID: "inv-1", Name: "Castilian", Symbols: []string{"p", "θ"}}))

	got, err := store.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "Castilian", got.Name)
	assert.Equal(t, []string{"p", "θ"}, got.Symbols)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInventoryStore_Save_DuplicateName(t *testing.T) {
	store := setupTestStore(t).InventoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Inventory{ID: "inv-1", Name: "Spanish"}))

	err := store.Save(ctx, domain.Inventory{ID: "inv-2", Name: "SPANISH"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestInventoryStore_GetByName(t *testing.T) {
	store := setupTestStore(t).InventoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Inventory{ID: "inv-1", Name: "Spanish"}))

	got, err := store.GetByName(ctx, "spanish")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", got.ID)

	_, err = store.GetByName(ctx, "French")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t).InventoryStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryStore_DeleteAndList(t *testing.T) {
	store := setupTestStore(t).InventoryStore()
	ctx := context.Background()

	for _, inv := range []domain.Inventory{
		{ID: "inv-1", Name: "zulu"},
		{ID: "inv-2", Name: "Abkhaz"},
		{ID: "inv-3", Name: "hawaiian"},
	} {
		require.NoError(t, store.Save(ctx, inv))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Abkhaz", list[0].Name)
	assert.Equal(t, "hawaiian", list[1].Name)
	assert.Equal(t, "zulu", list[2].Name)

	require.NoError(t, store.Delete(ctx, "inv-2"))
	// Deleting twice is not an error.
	require.NoError(t, store.Delete(ctx, "inv-2"))

	list, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestInventoryStore_List_Empty(t *testing.T) {
	store := setupTestStore(t).InventoryStore()

	list, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInventoryStore_Concurrency(t *testing.T) {
	store := setupTestStore(t).InventoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := string(rune('a' + i))
			assert.NoError(t, store.Save(ctx, domain.Inventory{ID: id, Name: id, Symbols: []string{"a"}}))
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 10)
}
