package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetCustomerQueryHandler looks customers up by registration position.
type GetCustomerQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetCustomerQueryHandler creates a handler reading through uowFactory.
func NewGetCustomerQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{uowFactory: uowFactory}
}

// Handle returns the customer or a ValueIsOutOfRangeError for an unknown position.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().GetByPosition(ctx, query.CustomerID())
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	return newGetCustomerQueryResponse(c), nil
}
