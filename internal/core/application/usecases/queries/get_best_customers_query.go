package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetBestCustomersQueryIsNotConstructed = errors.New(
		"GetBestCustomersQuery must be created via NewGetBestCustomersQuery constructor",
	)
)

// GetBestCustomersQuery retrieves customers grouped by identical spend, highest first.
type GetBestCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBestCustomersQuery creates the customer ranking query.
func NewGetBestCustomersQuery() GetBestCustomersQuery {
	return GetBestCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBestCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetBestCustomersQueryIsNotConstructed)
}
