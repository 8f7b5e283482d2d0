package driven

import (
	"context"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// InventoryStore persists user-defined phoneme inventories.
type InventoryStore interface {
	// Save stores or updates an inventory.
	Save(ctx context.Context, inventory domain.Inventory) error

	// Get retrieves an inventory by ID.
	// Returns domain.ErrNotFound if no inventory has that ID.
	Get(ctx context.Context, id string) (*domain.Inventory, error)

	// GetByName retrieves an inventory by its unique name.
	// Returns domain.ErrNotFound if no inventory has that name.
	GetByName(ctx context.Context, name string) (*domain.Inventory, error)

	// Delete removes an inventory.
	Delete(ctx context.Context, id string) error

	// List returns all stored inventories.
	List(ctx context.Context) ([]domain.Inventory, error)
}
