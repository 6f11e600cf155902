package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a request to move an order one step forward in its
// lifecycle.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, services.StepConfirm)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, services.NewDefaultOrderLifecycle())
//	estimate, err := handler.Handle(ctx, cmd)
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int
	step    services.Step

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to apply step to an order.
func NewAdvanceOrderCommand(orderID int, step services.Step) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setStep(step); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() int {
	return c.orderID
}

func (c AdvanceOrderCommand) Step() services.Step {
	return c.step
}

func (c *AdvanceOrderCommand) setStep(step services.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	c.step = step
	return nil
}
