package repository

import (
	"context"
	"sort"

	"vending-system/internal/model"
	apperrors "vending-system/pkg/errors"
)

// memoryInventoryRepository implements InventoryRepository with in-process
// maps. The session is memory-resident and single-threaded, so there is no
// persistent backend and no locking.
type memoryInventoryRepository struct {
	byCode      map[string]*model.Item
	catsToCodes map[string][]string
}

// NewInventoryRepository creates an empty in-memory inventory
func NewInventoryRepository() InventoryRepository {
	return &memoryInventoryRepository{
		byCode:      make(map[string]*model.Item),
		catsToCodes: make(map[string][]string),
	}
}

// AddItem stores the item under its code, last write wins
func (r *memoryInventoryRepository) AddItem(_ context.Context, item model.Item) error {
	r.byCode[item.Code] = &item
	r.catsToCodes[item.Category] = append(r.catsToCodes[item.Category], item.Code)
	return nil
}

// Get retrieves a copy of the item so callers cannot mutate stored state
func (r *memoryInventoryRepository) Get(_ context.Context, code string) (model.Item, error) {
	it, ok := r.byCode[code]
	if !ok {
		return model.Item{}, apperrors.ErrUnknownCode
	}
	return *it, nil
}

// Exists reports whether the code is in the catalog
func (r *memoryInventoryRepository) Exists(_ context.Context, code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// InStock reports whether the code exists with stock remaining
func (r *memoryInventoryRepository) InStock(_ context.Context, code string) bool {
	it, ok := r.byCode[code]
	return ok && it.Stock > 0
}

// TakeOne decrements stock by one; failures leave the item untouched
func (r *memoryInventoryRepository) TakeOne(_ context.Context, code string) error {
	it, ok := r.byCode[code]
	if !ok {
		return apperrors.ErrUnknownCode
	}
	if it.Stock <= 0 {
		return apperrors.ErrNoStock
	}
	it.Stock--
	return nil
}

// Categories sorts at view time; internal listings keep insertion order
func (r *memoryInventoryRepository) Categories(_ context.Context) []model.CategoryGroup {
	groups := make([]model.CategoryGroup, 0, len(r.catsToCodes))
	for cat, codes := range r.catsToCodes {
		sorted := make([]string, len(codes))
		copy(sorted, codes)
		sort.Strings(sorted)
		groups = append(groups, model.CategoryGroup{Category: cat, Codes: sorted})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups
}
