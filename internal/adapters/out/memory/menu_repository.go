package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
)

// MenuRepository implements ports.MenuRepository over the ledger.
type MenuRepository struct {
	uow *UnitOfWork
}

// Add appends item to the menu.
func (r *MenuRepository) Add(_ context.Context, item menu.Item) error {
	tx, err := r.uow.active()
	if err != nil {
		return err
	}
	if err = item.Validate(); err != nil {
		return err
	}

	tx.items = append(tx.items, item)
	return nil
}

// GetAll returns the whole menu in insertion order.
func (r *MenuRepository) GetAll(_ context.Context) ([]menu.Item, error) {
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	all := make([]menu.Item, 0, len(r.uow.ledger.items)+len(tx.items))
	all = append(all, r.uow.ledger.items...)
	return append(all, tx.items...), nil
}
