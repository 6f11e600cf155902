package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// GetCustomerTotalQueryHandler sums order totals per customer.
type GetCustomerTotalQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	ranking    services.Ranking
}

// NewGetCustomerTotalQueryHandler creates a handler reading through uowFactory.
func NewGetCustomerTotalQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomerTotalQueryHandler {
	return GetCustomerTotalQueryHandler{uowFactory: uowFactory, ranking: services.NewRanking()}
}

// Handle returns the customer's total over orders in any status.
// A customer id with no orders, registered or not, yields zero.
func (h GetCustomerTotalQueryHandler) Handle(ctx context.Context, query GetCustomerTotalQuery) (kernel.Money, error) {
	if err := query.Validate(); err != nil {
		return kernel.Money{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return kernel.Money{}, err
	}

	return h.ranking.CustomerTotal(query.CustomerID(), orders), nil
}
