package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/phonet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
)

var errStoreDown = errors.New("store unavailable")

// failingInventoryStore wraps a memory store and fails selected calls.
type failingInventoryStore struct {
	*memory.InventoryStore
	failSave   bool
	failGet    bool
	failList   bool
	failDelete bool
}

var _ driven.InventoryStore = (*failingInventoryStore)(nil)

func newFailingInventoryStore() *failingInventoryStore {
	return &failingInventoryStore{InventoryStore: memory.NewInventoryStore()}
}

func (m *failingInventoryStore) Save(ctx context.Context, inv domain.Inventory) error {
	if m.failSave {
		return errStoreDown
	}
	return m.InventoryStore.Save(ctx, inv)
}

func (m *failingInventoryStore) Get(ctx context.Context, id string) (*domain.Inventory, error) {
	if m.failGet {
		return nil, errStoreDown
	}
	return m.InventoryStore.Get(ctx, id)
}

func (m *failingInventoryStore) List(ctx context.Context) ([]domain.Inventory, error) {
	if m.failList {
		return nil, errStoreDown
	}
	return m.InventoryStore.List(ctx)
}

func (m *failingInventoryStore) Delete(ctx context.Context, id string) error {
	if m.failDelete {
		return errStoreDown
	}
	return m.InventoryStore.Delete(ctx, id)
}

// failingConfigStore rejects every write.
type failingConfigStore struct {
	*memory.ConfigStore
	failKey string
}

var _ driven.ConfigStore = (*failingConfigStore)(nil)

func (m *failingConfigStore) Set(key string, value any) error {
	if m.failKey == "" || m.failKey == key {
		return errStoreDown
	}
	return m.ConfigStore.Set(key, value)
}
