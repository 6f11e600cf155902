// Package memory provides an in-memory implementation of the Unit of Work pattern
// over a single process-local ledger.
//
// The Ledger owns the three collections of the system: customers, menu items and
// orders. A UnitOfWork holds the ledger's lock from Begin until Commit or Rollback,
// so operations are serialized by one coarse lock. Changes are written into a
// change set and only reach the ledger on Commit; Rollback or a failed operation
// leaves the ledger untouched.
//
// Usage Patterns:
//
//	ledger := memory.NewLedger()
//	factory := memory.NewUnitOfWorkFactory(ledger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns ErrNoActiveTransaction and has no effect,
// which makes the deferred Rollback above safe.
package memory

import (
	"sync"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
)

// Ledger is the process-local store. The zero value is not usable; use NewLedger.
type Ledger struct {
	mu sync.Mutex

	customers []customer.Customer
	items     []menu.Item
	orders    []*order.Order
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		customers: make([]customer.Customer, 0),
		items:     make([]menu.Item, 0),
		orders:    make([]*order.Order, 0),
	}
}

// changeSet collects the writes of one transaction.
type changeSet struct {
	customers []customer.Customer
	items     []menu.Item
	orders    []*order.Order
	updated   map[int]*order.Order
}

func newChangeSet() *changeSet {
	return &changeSet{updated: make(map[int]*order.Order)}
}

// apply merges the change set into the ledger. The caller holds the lock.
func (l *Ledger) apply(cs *changeSet) {
	l.customers = append(l.customers, cs.customers...)
	l.items = append(l.items, cs.items...)
	l.orders = append(l.orders, cs.orders...)
	for id, o := range cs.updated {
		l.orders[id-1] = o
	}
}
