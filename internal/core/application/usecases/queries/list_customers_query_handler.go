package queries

import (
	"context"
	"slices"
	"strings"

	"fooddelivery/internal/core/ports"
)

// ListCustomersQueryHandler lists customers.
//
// Example:
//
//	handler := NewListCustomersQueryHandler(uowFactory)
//	customers, err := handler.Handle(ctx, NewListCustomersQuery())
//	for _, c := range customers {
//	    fmt.Println(c.Description)
//	}
type ListCustomersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListCustomersQueryHandler creates a handler reading through uowFactory.
func NewListCustomersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{uowFactory: uowFactory}
}

// Handle returns every customer sorted ascending by description.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]GetCustomerQueryResponse, error) {
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

	all, err := uow.CustomerRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]GetCustomerQueryResponse, 0, len(all))
	for _, c := range all {
		customers = append(customers, newGetCustomerQueryResponse(c))
	}
	slices.SortFunc(customers, func(a, b GetCustomerQueryResponse) int {
		return strings.Compare(a.Description, b.Description)
	})

	return customers, nil
}
