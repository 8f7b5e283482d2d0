package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
)

// Ensure InventoryStore implements the interface.
var _ driven.InventoryStore = (*InventoryStore)(nil)

// InventoryStore is an in-memory implementation of driven.InventoryStore.
type InventoryStore struct {
	mu          sync.RWMutex
	inventories map[string]domain.Inventory
}

// NewInventoryStore creates a new in-memory inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		inventories: make(map[string]domain.Inventory),
	}
}

// Save stores or updates an inventory. Symbols are copied so later changes
// by the caller do not leak into the store.
func (s *InventoryStore) Save(_ context.Context, inventory domain.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.inventories {
		if id != inventory.ID && strings.EqualFold(existing.Name, inventory.Name) {
			return domain.ErrAlreadyExists
		}
	}
	inventory.Symbols = append([]string(nil), inventory.Symbols...)
	s.inventories[inventory.ID] = inventory
	return nil
}

// Get retrieves an inventory by ID.
func (s *InventoryStore) Get(_ context.Context, id string) (*domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inventory, ok := s.inventories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyInventory(inventory), nil
}

// GetByName retrieves an inventory by name, ignoring case.
func (s *InventoryStore) GetByName(_ context.Context, name string) (*domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inventory := range s.inventories {
		if strings.EqualFold(inventory.Name, name) {
			return copyInventory(inventory), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes an inventory.
func (s *InventoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inventories, id)
	return nil
}

// List returns all stored inventories.
func (s *InventoryStore) List(_ context.Context) ([]domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Inventory, 0, len(s.inventories))
	for _, inventory := range s.inventories {
		result = append(result, *copyInventory(inventory))
	}
	return result, nil
}

func copyInventory(inventory domain.Inventory) *domain.Inventory {
	inventory.Symbols = append([]string(nil), inventory.Symbols...)
	return &inventory
}
