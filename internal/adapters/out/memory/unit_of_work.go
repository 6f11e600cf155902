package memory

import (
	"context"
	"errors"

	"fooddelivery/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit, Rollback and repository methods
// used outside Begin ... Commit/Rollback.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over one Ledger.
type UnitOfWorkFactory struct {
	ledger *Ledger
}

// NewUnitOfWorkFactory creates a factory bound to ledger.
func NewUnitOfWorkFactory(ledger *Ledger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{ledger: ledger}
}

// Create produces a new UnitOfWork. Each instance is meant for one operation and
// one goroutine.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{ledger: f.ledger}
}

// UnitOfWork serializes one business operation against the Ledger.
type UnitOfWork struct {
	ledger *Ledger
	tx     *changeSet
}

// Begin takes the ledger lock and opens an empty change set. Calling Begin on an
// active unit of work is a no-op. A cancelled context fails before locking.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.ledger.mu.Lock()
	uow.tx = newChangeSet()
	return nil
}

// Commit applies the change set and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.ledger.apply(uow.tx)
	uow.release()
	return nil
}

// Rollback discards the change set and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.release()
	return nil
}

// CustomerRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{uow: uow}
}

// MenuRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &MenuRepository{uow: uow}
}

// OrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) release() {
	uow.tx = nil
	uow.ledger.mu.Unlock()
}

// active returns the change set or ErrNoActiveTransaction.
func (uow *UnitOfWork) active() (*changeSet, error) {
	if uow.tx == nil {
		return nil, ErrNoActiveTransaction
	}
	return uow.tx, nil
}
