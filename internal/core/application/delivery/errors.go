package delivery

import (
	"fooddelivery/internal/pkg/errs"
)

// Error kinds returned by Service. Match them with errors.Is; the concrete values
// are the typed errors of package errs and carry the offending parameter.
var (
	// ErrDuplicateCustomer is returned when registering an email twice.
	ErrDuplicateCustomer = errs.ErrObjectAlreadyExists

	// ErrInvalidOrder is returned for an order id that was never created.
	ErrInvalidOrder = errs.ErrObjectNotFound

	// ErrAmbiguousItem is returned when a search matches zero or several menu items.
	ErrAmbiguousItem = errs.ErrAmbiguousMatch

	// ErrIllegalTransition is returned when an order is not in the predecessor status.
	ErrIllegalTransition = errs.ErrTransitionIsIllegal

	// ErrUnknownCustomer is returned when describing a customer id that was never registered.
	ErrUnknownCustomer = errs.ErrValueIsOutOfRange

	ErrValueIsInvalid  = errs.ErrValueIsInvalid
	ErrValueIsRequired = errs.ErrValueIsRequired
)
