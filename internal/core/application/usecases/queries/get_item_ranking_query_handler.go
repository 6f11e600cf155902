package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// GetItemRankingQueryHandler ranks the items that appear in orders.
// Items never ordered are not listed.
type GetItemRankingQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	ranking    services.Ranking
}

// NewGetItemRankingQueryHandler creates a handler reading through uowFactory.
func NewGetItemRankingQueryHandler(uowFactory ports.UnitOfWorkFactory) GetItemRankingQueryHandler {
	return GetItemRankingQueryHandler{uowFactory: uowFactory, ranking: services.NewRanking()}
}

// Handle returns the ranking, highest first, ties by category then description.
func (h GetItemRankingQueryHandler) Handle(ctx context.Context, query GetItemRankingQuery) ([]ItemRankResponse, error) {
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

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var ranked []services.ItemAmount
	if query.By() == RankItemsByAmount {
		ranked = h.ranking.ItemsByAmount(orders)
	} else {
		ranked = h.ranking.ItemsByQuantity(orders)
	}

	items := make([]ItemRankResponse, 0, len(ranked))
	for _, r := range ranked {
		display := fmt.Sprintf("%s, %d", r.Item.Description(), r.Quantity)
		if query.By() == RankItemsByAmount {
			display = fmt.Sprintf("%s, %s", r.Item.Description(), r.Amount)
		}

		items = append(items, ItemRankResponse{
			Description: r.Item.Description(),
			Category:    r.Item.Category(),
			Quantity:    r.Quantity,
			Amount:      r.Amount,
			Display:     display,
		})
	}

	return items, nil
}
