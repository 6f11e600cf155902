package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
)

// AddMenuItemCommand represents a request to append an item to the menu.
// The item is validated when the command is built.
//
// Example:
//
//	cmd, err := NewAddMenuItemCommand("Hamburger", decimal.RequireFromString("5.00"), "Burger", 10)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
//
//	handler := NewAddMenuItemCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	item menu.Item

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Price and preparation time must not be negative.
func NewAddMenuItemCommand(
	description string,
	price decimal.Decimal,
	category string,
	prepTime int,
) (AddMenuItemCommand, error) {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return AddMenuItemCommand{}, err
	}

	item, err := menu.NewItem(description, money, category, prepTime)
	if err != nil {
		return AddMenuItemCommand{}, err
	}

	return AddMenuItemCommand{item: item, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Item returns the menu item to add.
func (c AddMenuItemCommand) Item() menu.Item {
	return c.item
}
