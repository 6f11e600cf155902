package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
)

// AdvanceOrderCommandHandler applies lifecycle steps to orders and returns the
// remaining time estimate computed from the order's current line items.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

// NewAdvanceOrderCommandHandler creates a handler that estimates with lifecycle.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, lifecycle services.OrderLifecycle) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle moves the order forward and returns the estimate in minutes.
// A wrong predecessor status fails with a TransitionIsIllegalError and saves nothing.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (kernel.Minutes, error) {
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

	estimate, err := h.lifecycle.Advance(o, cmd.Step())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return estimate, nil
}
