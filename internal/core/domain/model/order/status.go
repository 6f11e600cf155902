package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	NEW ──> CONFIRMED ──> PREPARATION ──> ON_DELIVERY ──> DELIVERED
//
// Each arrow is taken by exactly one operation: Confirm, StartPreparation,
// BeginDelivery and CompleteDelivery. DELIVERED is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the status of a freshly created order. Items are added here.
	New

	// Confirmed means the customer confirmed the order.
	Confirmed

	// Preparation means the kitchen is preparing the order.
	Preparation

	// OnDelivery means a courier is carrying the order.
	OnDelivery

	// Delivered is the final status.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		New:         "NEW",
		Confirmed:   "CONFIRMED",
		Preparation: "PREPARATION",
		OnDelivery:  "ON_DELIVERY",
		Delivered:   "DELIVERED",
	}
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if s < New || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, or "UNKNOWN" for invalid values.
//
// Example:
//
//	fmt.Println(order.OnDelivery) // Output: ON_DELIVERY
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether no further transition exists.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Confirm transitions NEW to CONFIRMED.
func (s Status) Confirm() (Status, error) {
	return s.advance(New, Confirmed)
}

// StartPreparation transitions CONFIRMED to PREPARATION.
func (s Status) StartPreparation() (Status, error) {
	return s.advance(Confirmed, Preparation)
}

// BeginDelivery transitions PREPARATION to ON_DELIVERY.
func (s Status) BeginDelivery() (Status, error) {
	return s.advance(Preparation, OnDelivery)
}

// CompleteDelivery transitions ON_DELIVERY to DELIVERED.
func (s Status) CompleteDelivery() (Status, error) {
	return s.advance(OnDelivery, Delivered)
}

// advance returns to when s is from, and a TransitionIsIllegalError otherwise.
// The returned status is Unknown on error.
func (s Status) advance(from, to Status) (Status, error) {
	if s != from {
		cause := fmt.Errorf("%s requires %s", to.String(), from.String())
		if s.IsFinal() {
			cause = fmt.Errorf("%s is final", s.String())
		}
		return Unknown, errs.NewTransitionIsIllegalErrorWithCause(s.String(), to.String(), cause)
	}
	return to, nil
}
