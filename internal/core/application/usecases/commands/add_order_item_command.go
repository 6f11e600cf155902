package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
)

// AddOrderItemCommand represents a request to add a quantity of the single menu item
// matching a search text to an order.
//
// Example:
//
//	cmd, err := NewAddOrderItemCommand(orderID, "hamburger", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order item: %w", err)
//	}
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	qty, err := handler.Handle(ctx, cmd)
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID  int
	search   string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add quantity units to an order.
// Quantity must be greater than zero.
func NewAddOrderItemCommand(orderID int, search string, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		orderID: orderID,
		search:  search,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setQuantity(quantity); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() int {
	return c.orderID
}

func (c AddOrderItemCommand) Search() string {
	return c.search
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
