package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. Its id must be Count()+1.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by id. The caller owns the returned copy;
	// changes are only stored through Update.
	// Returns ObjectNotFoundError when id is not in [1, Count()].
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll retrieves every order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Count returns the number of orders created so far.
	Count(ctx context.Context) (int, error)
}
