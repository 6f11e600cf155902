package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetCustomerTotalQueryIsNotConstructed = errors.New(
		"GetCustomerTotalQuery must be created via NewGetCustomerTotalQuery constructor",
	)
)

// GetCustomerTotalQuery retrieves the sum of every order total of one customer.
type GetCustomerTotalQuery struct {
	customerID int

	guard guard.ConstructorGuard
}

// NewGetCustomerTotalQuery creates a query for the total of customerID.
func NewGetCustomerTotalQuery(customerID int) GetCustomerTotalQuery {
	return GetCustomerTotalQuery{customerID: customerID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerTotalQueryIsNotConstructed)
}

// CustomerID returns the customer id.
func (q GetCustomerTotalQuery) CustomerID() int {
	return q.customerID
}
