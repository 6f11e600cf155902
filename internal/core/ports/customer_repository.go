// Package ports defines repository interfaces for the food delivery ledger.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are kept in registration order.
type CustomerRepository interface {
	// Add stores a new customer. Its id must be Count()+1.
	Add(ctx context.Context, c customer.Customer) error

	// GetByPosition returns the Nth registered customer, counting from 1.
	// Returns ValueIsOutOfRangeError when position is not in [1, Count()].
	GetByPosition(ctx context.Context, position int) (customer.Customer, error)

	// GetByEmail returns the customer registered with email.
	// Returns ObjectNotFoundError when there is none.
	GetByEmail(ctx context.Context, email string) (customer.Customer, error)

	// GetAll returns every customer in registration order.
	GetAll(ctx context.Context) ([]customer.Customer, error)

	// Count returns the number of registered customers.
	Count(ctx context.Context) (int, error)
}
