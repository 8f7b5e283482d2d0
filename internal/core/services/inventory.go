package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
	"github.com/custodia-labs/phonet/internal/logger"
)

// Ensure InventoryService implements the interface.
var _ driving.InventoryService = (*InventoryService)(nil)

// InventoryService manages built-in and user-defined phoneme inventories.
type InventoryService struct {
	store    driven.InventoryStore
	features driving.FeatureService
	builtins []domain.Inventory
	now      func() time.Time
}

// NewInventoryService creates a new inventory service. store may be nil,
// in which case only the built-in inventories are available.
func NewInventoryService(store driven.InventoryStore, features driving.FeatureService) *InventoryService {
	return &InventoryService{
		store:    store,
		features: features,
		builtins: domain.BuiltinInventories(),
		now:      time.Now,
	}
}

// Create validates and stores a new inventory.
func (s *InventoryService) Create(
	ctx context.Context,
	name, description string,
	symbols []string,
) (*domain.Inventory, error) {
	if s.store == nil {
		return nil, fmt.Errorf("create inventory: %w", domain.ErrReadOnly)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: inventory name is required", domain.ErrInvalidInput)
	}

	cleaned := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if sym = strings.TrimSpace(sym); sym != "" {
			cleaned = append(cleaned, sym)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: inventory needs at least one symbol", domain.ErrInvalidInput)
	}
	// Generalizing validates every symbol in one pass.
	if _, err := s.features.Generalize(cleaned); err != nil {
		return nil, err
	}

	if _, err := s.find(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: inventory %q", domain.ErrAlreadyExists, name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	inv := domain.Inventory{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Symbols:     cleaned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("save inventory: %w", err)
	}
	logger.Info("Created inventory %q (%s) with %d symbols", inv.Name, inv.ID, len(inv.Symbols))

	return &inv, nil
}

// Get retrieves an inventory by ID or name.
func (s *InventoryService) Get(ctx context.Context, ref string) (*domain.Inventory, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: inventory reference is required", domain.ErrInvalidInput)
	}
	inv, err := s.find(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("get inventory %q: %w", ref, err)
	}
	return inv, nil
}

// find looks ref up as an ID, then as a name, among built-ins first.
func (s *InventoryService) find(ctx context.Context, ref string) (*domain.Inventory, error) {
	for i := range s.builtins {
		if s.builtins[i].ID == ref || strings.EqualFold(s.builtins[i].Name, ref) {
			inv := s.builtins[i]
			return &inv, nil
		}
	}
	if s.store == nil {
		return nil, domain.ErrNotFound
	}

	inv, err := s.store.Get(ctx, ref)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.store.GetByName(ctx, ref)
}

// List returns the built-in inventories followed by stored ones sorted
// by name.
func (s *InventoryService) List(ctx context.Context) ([]domain.Inventory, error) {
	out := make([]domain.Inventory, 0, len(s.builtins))
	out = append(out, s.builtins...)
	if s.store == nil {
		return out, nil
	}

	stored, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	sort.Slice(stored, func(i, j int) bool {
		return strings.ToLower(stored[i].Name) < strings.ToLower(stored[j].Name)
	})
	return append(out, stored...), nil
}

// Remove deletes a stored inventory.
func (s *InventoryService) Remove(ctx context.Context, ref string) error {
	inv, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	if inv.Builtin || s.store == nil {
		return fmt.Errorf("remove inventory %q: %w", inv.Name, domain.ErrReadOnly)
	}
	if err := s.store.Delete(ctx, inv.ID); err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	logger.Info("Removed inventory %q (%s)", inv.Name, inv.ID)
	return nil
}

// Generalize returns the natural class covering a whole inventory.
func (s *InventoryService) Generalize(ctx context.Context, ref string) (*domain.NaturalClass, error) {
	inv, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.features.Generalize(inv.Symbols)
}

// Filter returns the inventory's sounds that belong to pattern.
func (s *InventoryService) Filter(
	ctx context.Context,
	ref string,
	pattern domain.Phonet,
) ([]domain.Realization, error) {
	if pattern == nil {
		return nil, fmt.Errorf("%w: pattern is required", domain.ErrInvalidInput)
	}
	inv, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	logger.Debug("Filtering %q by %s", inv.Name, pattern)
	var out []domain.Realization
	for _, sym := range inv.Symbols {
		class, err := s.features.Generalize([]string{sym})
		if err != nil {
			// Stored symbols were validated on create.
			logger.Warn("Skipping unreadable symbol %q in %q", sym, inv.Name)
			continue
		}
		if domain.Matches(pattern, class.Pattern) {
			out = append(out, domain.Realization{Phonet: class.Pattern, Symbol: sym})
		}
	}
	return out, nil
}
