package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new order for a customer.
// The customer id is recorded as given; it is not checked against the registry.
//
// Example:
//
//	cmd := NewCreateOrderCommand(customerID)
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d created in NEW status", orderID)
type CreateOrderCommand struct {
	customerID int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order for customerID.
func NewCreateOrderCommand(customerID int) CreateOrderCommand {
	return CreateOrderCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id the order is placed for.
func (c CreateOrderCommand) CustomerID() int {
	return c.customerID
}
