package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
// Items are kept in the order they were added; duplicates are allowed.
type MenuRepository interface {
	// Add appends an item to the menu.
	Add(ctx context.Context, item menu.Item) error

	// GetAll returns the whole menu in insertion order.
	GetAll(ctx context.Context) ([]menu.Item, error)
}
