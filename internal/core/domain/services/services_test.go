package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func menuItem(t *testing.T, description, price, category string, prepTime int) menu.Item {
	t.Helper()
	amount, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewItem(description, amount, category, prepTime)
	require.NoError(t, err)
	return item
}

func newCustomer(t *testing.T, id int, name, email string) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, name, "Somewhere", "555", email)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, id, customerID int, lines map[menu.Item]int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, customerID)
	require.NoError(t, err)
	for item, qty := range lines {
		_, err = o.AddItem(item, qty)
		require.NoError(t, err)
	}
	return o
}
