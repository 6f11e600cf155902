package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrFindMenuItemsQueryIsNotConstructed = errors.New(
		"FindMenuItemsQuery must be created via NewFindMenuItemsQuery constructor",
	)
)

// FindMenuItemsQuery retrieves menu items whose description contains a search text,
// ignoring case. An empty search matches the whole menu.
type FindMenuItemsQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewFindMenuItemsQuery creates a menu search.
func NewFindMenuItemsQuery(search string) FindMenuItemsQuery {
	return FindMenuItemsQuery{search: search, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FindMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrFindMenuItemsQueryIsNotConstructed)
}

// Search returns the search text.
func (q FindMenuItemsQuery) Search() string {
	return q.search
}

// MenuItemResponse represents one menu item.
// Display is rendered as "[CATEGORY] DESCRIPTION: PRICE".
type MenuItemResponse struct {
	Description string
	Price       kernel.Money
	Category    string
	PrepTime    kernel.Minutes
	Display     string
}

func newMenuItemResponse(item menu.Item) MenuItemResponse {
	return MenuItemResponse{
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		PrepTime:    item.PrepTime(),
		Display:     item.String(),
	}
}
