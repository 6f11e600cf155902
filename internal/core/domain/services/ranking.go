package services

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
)

// CustomerRank groups every customer whose orders add up to the same Total.
type CustomerRank struct {
	Total     kernel.Money
	Customers []string
}

// ItemAmount is the aggregate of one menu item over many orders.
type ItemAmount struct {
	Item     menu.Item
	Quantity int
	Amount   kernel.Money
}

// Ranking aggregates orders into reports. It holds no state.
type Ranking struct{}

// NewRanking creates a Ranking.
func NewRanking() Ranking {
	return Ranking{}
}

// CustomerTotal sums the totals of the orders placed for customerID, whatever their status.
func (Ranking) CustomerTotal(customerID int, orders []*order.Order) kernel.Money {
	total := kernel.ZeroMoney()
	for _, o := range orders {
		if o.CustomerID() == customerID {
			total = total.Add(o.Total())
		}
	}
	return total
}

// RankCustomers sums order totals per customer and groups customers sharing the
// exact same total, highest total first. Descriptions inside a group are sorted.
// Customers without orders are left out, as are orders whose customer id is not
// among customers.
func (r Ranking) RankCustomers(customers []customer.Customer, orders []*order.Order) []CustomerRank {
	byID := make(map[int]customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID()] = c
	}

	totals := make(map[int]kernel.Money)
	for _, o := range orders {
		if _, ok := byID[o.CustomerID()]; !ok {
			continue
		}
		if _, ok := totals[o.CustomerID()]; !ok {
			totals[o.CustomerID()] = kernel.ZeroMoney()
		}
		totals[o.CustomerID()] = totals[o.CustomerID()].Add(o.Total())
	}

	ids := slices.Collect(maps.Keys(totals))
	slices.SortFunc(ids, func(a, b int) int {
		return cmp.Or(
			totals[b].Compare(totals[a]),
			strings.Compare(byID[a].String(), byID[b].String()),
		)
	})

	ranks := make([]CustomerRank, 0)
	for _, id := range ids {
		last := len(ranks) - 1
		if last >= 0 && ranks[last].Total.IsEqual(totals[id]) {
			ranks[last].Customers = append(ranks[last].Customers, byID[id].String())
			continue
		}
		ranks = append(ranks, CustomerRank{Total: totals[id], Customers: []string{byID[id].String()}})
	}

	return ranks
}

// ItemsByAmount aggregates ordered items, highest price × quantity first,
// ties broken by category, description, price and preparation time.
func (r Ranking) ItemsByAmount(orders []*order.Order) []ItemAmount {
	items := r.aggregateItems(orders)
	slices.SortFunc(items, func(a, b ItemAmount) int {
		return cmp.Or(
			b.Amount.Compare(a.Amount),
			menu.Compare(a.Item, b.Item),
		)
	})
	return items
}

// ItemsByQuantity aggregates ordered items, highest quantity first,
// ties broken by category, description, price and preparation time.
func (r Ranking) ItemsByQuantity(orders []*order.Order) []ItemAmount {
	items := r.aggregateItems(orders)
	slices.SortFunc(items, func(a, b ItemAmount) int {
		return cmp.Or(
			cmp.Compare(b.Quantity, a.Quantity),
			menu.Compare(a.Item, b.Item),
		)
	})
	return items
}

func (Ranking) aggregateItems(orders []*order.Order) []ItemAmount {
	byKey := make(map[menu.Key]ItemAmount)
	for _, o := range orders {
		for _, line := range o.Lines() {
			agg, ok := byKey[line.Item.Key()]
			if !ok {
				agg = ItemAmount{Item: line.Item, Amount: kernel.ZeroMoney()}
			}
			agg.Quantity += line.Quantity
			agg.Amount = agg.Amount.Add(line.Amount())
			byKey[line.Item.Key()] = agg
		}
	}
	return slices.Collect(maps.Values(byKey))
}
