package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/ports"
)

// FindMenuItemsQueryHandler searches the menu.
//
// Example:
//
//	handler := NewFindMenuItemsQueryHandler(uowFactory)
//	items, _ := handler.Handle(ctx, NewFindMenuItemsQuery("burger"))
//	for _, item := range items {
//	    fmt.Println(item.Display) // "[Burger] Cheeseburger: 6.50"
//	}
type FindMenuItemsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewFindMenuItemsQueryHandler creates a handler reading through uowFactory.
func NewFindMenuItemsQueryHandler(uowFactory ports.UnitOfWorkFactory) FindMenuItemsQueryHandler {
	return FindMenuItemsQueryHandler{uowFactory: uowFactory}
}

// Handle returns the matching items sorted by category, then description.
func (h FindMenuItemsQueryHandler) Handle(ctx context.Context, query FindMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	all, err := uow.MenuRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := menu.Search(all, query.Search())
	menu.SortByCategory(matched)

	items := make([]MenuItemResponse, 0, len(matched))
	for _, item := range matched {
		items = append(items, newMenuItemResponse(item))
	}

	return items, nil
}
