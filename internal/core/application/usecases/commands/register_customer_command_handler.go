package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/pkg/errs"
)

// RegisterCustomerCommandHandler registers customers under dense ids starting at 1.
// Registration fails with an ObjectAlreadyExistsError when the email is taken.
//
// Example:
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	cmd, _ := NewRegisterCustomerCommand("Jon Snow", "The Wall", "555-0101", "jon@wall.org")
//
//	id, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // email already registered
//	}
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the customer and returns its id.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	existing, err := customerRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return 0, errs.NewObjectAlreadyExistsErrorWithCause("email", cmd.Email(),
			fmt.Errorf("registered as customer %d", existing.ID()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}

	count, err := customerRepo.Count(ctx)
	if err != nil {
		return 0, err
	}

	c, err := customer.NewCustomer(count+1, cmd.Name(), cmd.Address(), cmd.Phone(), cmd.Email())
	if err != nil {
		return 0, err
	}

	if err = customerRepo.Add(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return c.ID(), nil
}
