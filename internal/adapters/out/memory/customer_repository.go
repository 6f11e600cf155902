package memory

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/pkg/errs"
)

// CustomerRepository implements ports.CustomerRepository over the ledger.
type CustomerRepository struct {
	uow *UnitOfWork
}

// Add stores a new customer at the end of the registration order.
func (r *CustomerRepository) Add(_ context.Context, c customer.Customer) error {
	tx, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = c.Validate(); err != nil {
		return err
	}

	next := len(r.uow.ledger.customers) + len(tx.customers) + 1
	if c.ID() != next {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid",
			fmt.Errorf("%d is not the next id %d", c.ID(), next))
	}

	tx.customers = append(tx.customers, c)
	return nil
}

// GetByPosition returns the Nth registered customer.
func (r *CustomerRepository) GetByPosition(ctx context.Context, position int) (customer.Customer, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return customer.Customer{}, err
	}
	if position < 1 || position > len(all) {
		return customer.Customer{}, errs.NewValueIsOutOfRangeError("customerId", position, 1, len(all))
	}
	return all[position-1], nil
}

// GetByEmail returns the customer registered with email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (customer.Customer, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return customer.Customer{}, err
	}
	for _, c := range all {
		if c.Email() == email {
			return c, nil
		}
	}
	return customer.Customer{}, errs.NewObjectNotFoundError("email", email)
}

// GetAll returns every customer, committed and pending, in registration order.
func (r *CustomerRepository) GetAll(_ context.Context) ([]customer.Customer, error) {
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	all := make([]customer.Customer, 0, len(r.uow.ledger.customers)+len(tx.customers))
	all = append(all, r.uow.ledger.customers...)
	return append(all, tx.customers...), nil
}

// Count returns the number of registered customers.
func (r *CustomerRepository) Count(_ context.Context) (int, error) {
	tx, err := r.uow.active()
	if err != nil {
		return 0, err
	}
	return len(r.uow.ledger.customers) + len(tx.customers), nil
}
