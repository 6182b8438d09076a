package repository

import (
	"context"

	"vending-system/internal/model"
)

// InventoryRepository defines the interface for catalog and stock operations
type InventoryRepository interface {
	// AddItem stores an item, overwriting any previous item with the same
	// code. The code is also appended to its category listing even when it
	// already existed, so callers must not re-add an item they only mean to
	// update.
	AddItem(ctx context.Context, item model.Item) error

	// Get retrieves a read-only copy of the item with the given code.
	// Returns ErrUnknownCode if the code is not in the catalog.
	Get(ctx context.Context, code string) (model.Item, error)

	// Exists reports whether the code is in the catalog
	Exists(ctx context.Context, code string) bool

	// InStock reports whether the code exists with stock remaining
	InStock(ctx context.Context, code string) bool

	// TakeOne decrements the item's stock by exactly one. It is the single
	// point of stock mutation. Returns ErrUnknownCode for a missing code and
	// ErrNoStock for an exhausted one; neither mutates anything.
	TakeOne(ctx context.Context, code string) error

	// Categories returns the catalog grouped by category, with categories
	// and the codes within each sorted lexicographically.
	Categories(ctx context.Context) []model.CategoryGroup
}
