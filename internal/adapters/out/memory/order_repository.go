package memory

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the ledger.
// Aggregates are copied on the way in and on the way out.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add saves a new order at the end of the creation order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	tx, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}

	next := len(r.uow.ledger.orders) + len(tx.orders) + 1
	if aggregate.ID() != next {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid",
			fmt.Errorf("%d is not the next id %d", aggregate.ID(), next))
	}

	tx.orders = append(tx.orders, aggregate.Clone())
	return nil
}

// Update saves an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	tx, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	committed := len(r.uow.ledger.orders)
	switch {
	case id >= 1 && id <= committed:
		tx.updated[id] = aggregate.Clone()
	case id > committed && id <= committed+len(tx.orders):
		tx.orders[id-committed-1] = aggregate.Clone()
	default:
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return nil
}

// Get retrieves a copy of the order with id.
func (r *OrderRepository) Get(_ context.Context, id int) (*order.Order, error) {
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	o, ok := r.lookup(tx, id)
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", id,
			fmt.Errorf("%d orders created", len(r.uow.ledger.orders)+len(tx.orders)))
	}
	return o.Clone(), nil
}

// GetAll retrieves copies of every order in creation order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	count := len(r.uow.ledger.orders) + len(tx.orders)
	all := make([]*order.Order, 0, count)
	for id := 1; id <= count; id++ {
		o, _ := r.lookup(tx, id)
		all = append(all, o.Clone())
	}
	return all, nil
}

// Count returns the number of orders created so far.
func (r *OrderRepository) Count(_ context.Context) (int, error) {
	tx, err := r.uow.active()
	if err != nil {
		return 0, err
	}
	return len(r.uow.ledger.orders) + len(tx.orders), nil
}

// lookup resolves id through the change set, then the ledger.
func (r *OrderRepository) lookup(tx *changeSet, id int) (*order.Order, bool) {
	committed := len(r.uow.ledger.orders)
	switch {
	case id >= 1 && id <= committed:
		if o, ok := tx.updated[id]; ok {
			return o, true
		}
		return r.uow.ledger.orders[id-1], true
	case id > committed && id <= committed+len(tx.orders):
		return tx.orders[id-committed-1], true
	default:
		return nil, false
	}
}
