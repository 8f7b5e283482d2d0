package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/phonet/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
)

// DatabaseFile is the name of the database inside the data directory.
const DatabaseFile = "phonet.db"

// Store is a SQLite-based storage that provides access to the inventory
// store interface through a wrapper type.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultDataDir returns ~/.phonet/data.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".phonet", "data"), nil
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.phonet/data/phonet.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		var err error
		if dataDir, err = DefaultDataDir(); err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// InventoryStore returns an InventoryStore interface backed by this store.
func (s *Store) InventoryStore() driven.InventoryStore {
	return &inventoryStore{store: s}
}

// migrate runs all pending migrations, each in its own transaction.
func (s *Store) migrate(fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_inventories.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) applyMigration(version int, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(content); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Inventory Store ====================

// inventoryStore implements driven.InventoryStore.
type inventoryStore struct {
	store *Store
}

var _ driven.InventoryStore = (*inventoryStore)(nil)

const inventoryColumns = `id, name, description, symbols, created_at, updated_at`

// Save stores or updates an inventory.
func (s *inventoryStore) Save(ctx context.Context, inventory domain.Inventory) error {
	symbols := inventory.Symbols
	if symbols == nil {
		symbols = []string{}
	}
	symbolsJSON, err := json.Marshal(symbols)
	if err != nil {
		return fmt.Errorf("marshalling symbols: %w", err)
	}

	now := time.Now().UTC()
	if inventory.CreatedAt.IsZero() {
		inventory.CreatedAt = now
	}
	if inventory.UpdatedAt.IsZero() {
		inventory.UpdatedAt = now
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO inventories (`+inventoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			symbols = excluded.symbols,
			updated_at = excluded.updated_at
	`, inventory.ID, inventory.Name, inventory.Description, string(symbolsJSON),
		inventory.CreatedAt.UTC(), inventory.UpdatedAt.UTC())

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("saving inventory %q: %w", inventory.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("saving inventory: %w", err)
	}
	return nil
}

// Get retrieves an inventory by ID.
func (s *inventoryStore) Get(ctx context.Context, id string) (*domain.Inventory, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+inventoryColumns+` FROM inventories WHERE id = ?
	`, id)
	return scanInventory(row)
}

// GetByName retrieves an inventory by name, ignoring case.
func (s *inventoryStore) GetByName(ctx context.Context, name string) (*domain.Inventory, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+inventoryColumns+` FROM inventories WHERE name = ?
	`, name)
	return scanInventory(row)
}

// Delete removes an inventory.
func (s *inventoryStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM inventories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting inventory: %w", err)
	}
	return nil
}

// List returns all stored inventories ordered by name.
func (s *inventoryStore) List(ctx context.Context) ([]domain.Inventory, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+inventoryColumns+` FROM inventories ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying inventories: %w", err)
	}
	defer rows.Close()

	var inventories []domain.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		inventories = append(inventories, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inventories: %w", err)
	}
	return inventories, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInventory(row scanner) (*domain.Inventory, error) {
	var inv domain.Inventory
	var symbolsJSON string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&inv.ID, &inv.Name, &inv.Description, &symbolsJSON,
		&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning inventory: %w", err)
	}

	if err := json.Unmarshal([]byte(symbolsJSON), &inv.Symbols); err != nil {
		return nil, fmt.Errorf("unmarshaling symbols: %w", err)
	}
	if createdAt.Valid {
		inv.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		inv.UpdatedAt = updatedAt.Time
	}

	return &inv, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
