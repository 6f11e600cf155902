package queries

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetItemRankingQueryIsNotConstructed = errors.New(
		"GetItemRankingQuery must be created via NewGetItemRankingQuery constructor",
	)
)

// RankItemsBy selects the measure items are ranked on.
type RankItemsBy int

const (
	RankItemsByUnknown RankItemsBy = iota
	// RankItemsByAmount ranks by price × quantity summed over all orders.
	RankItemsByAmount
	// RankItemsByQuantity ranks by quantity summed over all orders.
	RankItemsByQuantity
)

// GetItemRankingQuery retrieves every ordered item ranked by amount or quantity.
//
// Example:
//
//	query, _ := NewGetItemRankingQuery(RankItemsByQuantity)
//	items, _ := handler.Handle(ctx, query)
//	fmt.Println(items[0].Display) // "Hamburger, 13"
type GetItemRankingQuery struct { //nolint:recvcheck //using for validation
	by RankItemsBy

	guard guard.ConstructorGuard
}

// NewGetItemRankingQuery creates an item ranking query.
func NewGetItemRankingQuery(by RankItemsBy) (GetItemRankingQuery, error) {
	query := GetItemRankingQuery{guard: guard.NewConstructorGuard()}
	if err := query.setBy(by); err != nil {
		return GetItemRankingQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemRankingQuery) Validate() error {
	return q.guard.Validate(ErrGetItemRankingQueryIsNotConstructed)
}

// By returns the ranking measure.
func (q GetItemRankingQuery) By() RankItemsBy {
	return q.by
}

func (q *GetItemRankingQuery) setBy(by RankItemsBy) error {
	if by != RankItemsByAmount && by != RankItemsByQuantity {
		return errs.NewValueIsInvalidErrorWithCause("ranking is invalid", fmt.Errorf("%d is not a ranking measure", by))
	}
	q.by = by
	return nil
}

// ItemRankResponse is one ranked item. Display is "DESCRIPTION, AMOUNT" when ranking
// by amount and "DESCRIPTION, QUANTITY" when ranking by quantity.
type ItemRankResponse struct {
	Description string
	Category    string
	Quantity    int
	Amount      kernel.Money
	Display     string
}
