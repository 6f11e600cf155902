package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// GetBestCustomersQueryHandler ranks customers by total spend.
//
// Example:
//
//	handler := NewGetBestCustomersQueryHandler(uowFactory)
//	ranks, _ := handler.Handle(ctx, NewGetBestCustomersQuery())
//	for _, rank := range ranks {
//	    fmt.Println(rank.Total, rank.Customers)
//	}
type GetBestCustomersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	ranking    services.Ranking
}

// NewGetBestCustomersQueryHandler creates a handler reading through uowFactory.
func NewGetBestCustomersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetBestCustomersQueryHandler {
	return GetBestCustomersQueryHandler{uowFactory: uowFactory, ranking: services.NewRanking()}
}

// Handle returns the ranking with the highest total first.
func (h GetBestCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetBestCustomersQuery,
) ([]services.CustomerRank, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers, err := uow.CustomerRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.ranking.RankCustomers(customers, orders), nil
}
