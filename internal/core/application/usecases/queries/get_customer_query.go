// Package queries contains read operations over the ledger.
// Every handler opens a unit of work, reads, and rolls back; queries never commit.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// GetCustomerQuery retrieves the Nth registered customer.
//
// Example:
//
//	query := NewGetCustomerQuery(1)
//	handler := NewGetCustomerQueryHandler(uowFactory)
//
//	c, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrValueIsOutOfRange) {
//	    // no such customer
//	}
//	fmt.Println(c.Description) // "Jon Snow, The Wall, 555-0101, jon@wall.org"
type GetCustomerQuery struct {
	customerID int

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for the customer registered at position customerID.
func NewGetCustomerQuery(customerID int) GetCustomerQuery {
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the requested registration position.
func (q GetCustomerQuery) CustomerID() int {
	return q.customerID
}

// GetCustomerQueryResponse represents one registered customer.
type GetCustomerQueryResponse struct {
	ID          int
	Name        string
	Address     string
	Phone       string
	Email       string
	Description string
}

func newGetCustomerQueryResponse(c customer.Customer) GetCustomerQueryResponse {
	return GetCustomerQueryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Address:     c.Address(),
		Phone:       c.Phone(),
		Email:       c.Email(),
		Description: c.String(),
	}
}
