package driving

import (
	"context"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// InventoryService manages named phoneme inventories.
type InventoryService interface {
	// Create validates and stores a new inventory.
	// Returns domain.ErrInvalidInput for an empty name or symbol list,
	// domain.ErrAlreadyExists for a taken name, and
	// domain.ErrUnrecognizedSymbol for a symbol that cannot be read.
	Create(ctx context.Context, name, description string, symbols []string) (*domain.Inventory, error)

	// Get retrieves an inventory by ID or name, built-ins included.
	Get(ctx context.Context, ref string) (*domain.Inventory, error)

	// List returns the built-in inventories followed by stored ones
	// sorted by name.
	List(ctx context.Context) ([]domain.Inventory, error)

	// Remove deletes a stored inventory.
	// Returns domain.ErrReadOnly for built-ins.
	Remove(ctx context.Context, ref string) error

	// Generalize returns the natural class covering a whole inventory.
	Generalize(ctx context.Context, ref string) (*domain.NaturalClass, error)

	// Filter returns the inventory's sounds that belong to pattern, in
	// inventory order.
	Filter(ctx context.Context, ref string, pattern domain.Phonet) ([]domain.Realization, error)
}
