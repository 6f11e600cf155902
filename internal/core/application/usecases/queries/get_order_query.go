package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its line items, total and status.
//
// Example:
//
//	query := NewGetOrderQuery(1)
//	handler := NewGetOrderQueryHandler(uowFactory)
//
//	o, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
//	fmt.Printf("%s, total %s\n", o.Status, o.Total)
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with orderID.
func NewGetOrderQuery(orderID int) GetOrderQuery {
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// OrderLineResponse is one line of an order. Display is "DESCRIPTION, QUANTITY".
type OrderLineResponse struct {
	Description string
	Category    string
	Price       kernel.Money
	Quantity    int
	Display     string
}

// GetOrderQueryResponse represents an order snapshot.
type GetOrderQueryResponse struct {
	ID         int
	CustomerID int
	Status     order.Status
	Lines      []OrderLineResponse
	Total      kernel.Money
}

func newGetOrderQueryResponse(o *order.Order) GetOrderQueryResponse {
	lines := make([]OrderLineResponse, 0)
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			Description: line.Item.Description(),
			Category:    line.Item.Category(),
			Price:       line.Item.Price(),
			Quantity:    line.Quantity,
			Display:     line.String(),
		})
	}

	return GetOrderQueryResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		Lines:      lines,
		Total:      o.Total(),
	}
}
