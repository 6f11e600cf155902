package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
)

// AddOrderItemCommandHandler adds menu items to orders.
// The search text must match exactly one menu item; otherwise the handler fails with
// an AmbiguousMatchError and the order is left unchanged.
//
// Example:
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	cmd, _ := NewAddOrderItemCommand(1, "hamburger", 1)
//
//	qty, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAmbiguousMatch) {
//	    // refine the search text
//	}
type AddOrderItemCommandHandler struct {
	uowFactory OrderMenuUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for order item additions.
func NewAddOrderItemCommandHandler(uowFactory OrderMenuUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the matched item and returns its accumulated quantity in the order.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	items, err := uow.MenuRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	matches := menu.Search(items, cmd.Search())
	if len(matches) != 1 {
		return 0, errs.NewAmbiguousMatchErrorWithCause("search", cmd.Search(), len(matches),
			fmt.Errorf("menu has %d items", len(items)))
	}

	qty, err := o.AddItem(matches[0], cmd.Quantity())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return qty, nil
}
