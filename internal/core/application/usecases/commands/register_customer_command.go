package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
)

// RegisterCustomerCommand represents a request to register a new customer.
// The email is the customer's identity key.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand("Jon Snow", "The Wall", "555-0101", "jon@wall.org")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	address string
	phone   string
	email   string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// Name, address and phone are free text; email must not be blank.
func NewRegisterCustomerCommand(name, address, phone, email string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		name:    name,
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Address() string {
	return c.address
}

func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

func (c RegisterCustomerCommand) Email() string {
	return c.email
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
