package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

const (
	// DefaultStartupDelay is the conventional delay before the kitchen picks up a
	// confirmed order.
	DefaultStartupDelay kernel.Minutes = 5

	// DefaultTransportTime is the conventional time a courier needs to deliver.
	DefaultTransportTime kernel.Minutes = 15
)

// Step names one forward move of the order lifecycle.
type Step int

const (
	StepUnknown Step = iota
	StepConfirm
	StepStartPreparation
	StepBeginDelivery
	StepCompleteDelivery
)

func (s Step) String() string {
	switch s {
	case StepConfirm:
		return "confirm"
	case StepStartPreparation:
		return "start preparation"
	case StepBeginDelivery:
		return "begin delivery"
	case StepCompleteDelivery:
		return "complete delivery"
	default:
		return "unknown"
	}
}

// Target returns the status an order reaches through s.
func (s Step) Target() order.Status {
	switch s {
	case StepConfirm:
		return order.Confirmed
	case StepStartPreparation:
		return order.Preparation
	case StepBeginDelivery:
		return order.OnDelivery
	case StepCompleteDelivery:
		return order.Delivered
	default:
		return order.Unknown
	}
}

// Validate checks that s is one of the four lifecycle steps.
func (s Step) Validate() error {
	if s < StepConfirm || s > StepCompleteDelivery {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// OrderLifecycle moves orders through their statuses and returns delivery time
// estimates in minutes:
//
//	confirm           startup delay + longest preparation + transport
//	start preparation longest preparation + transport
//	begin delivery    transport
//	complete delivery no estimate (zero)
//
// Estimates are computed from the order's current line items on every call.
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle(services.DefaultStartupDelay, services.DefaultTransportTime)
//	eta, err := lifecycle.Advance(o, services.StepConfirm)
//	if errors.Is(err, errs.ErrTransitionIsIllegal) {
//	    // The order was not NEW
//	}
type OrderLifecycle struct {
	startupDelay  kernel.Minutes
	transportTime kernel.Minutes
}

// NewOrderLifecycle creates a lifecycle service with the given conventional delays.
func NewOrderLifecycle(startupDelay, transportTime kernel.Minutes) OrderLifecycle {
	return OrderLifecycle{
		startupDelay:  startupDelay,
		transportTime: transportTime,
	}
}

// NewDefaultOrderLifecycle uses a 5 minute startup delay and 15 minutes of transport.
func NewDefaultOrderLifecycle() OrderLifecycle {
	return NewOrderLifecycle(DefaultStartupDelay, DefaultTransportTime)
}

// Advance performs step on o and returns the estimate for the new status.
// On error o is unchanged.
func (l OrderLifecycle) Advance(o *order.Order, step Step) (kernel.Minutes, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	switch step {
	case StepConfirm:
		if err := o.Confirm(); err != nil {
			return 0, err
		}
		return l.startupDelay + o.LongestPrepTime() + l.transportTime, nil
	case StepStartPreparation:
		if err := o.StartPreparation(); err != nil {
			return 0, err
		}
		return o.LongestPrepTime() + l.transportTime, nil
	case StepBeginDelivery:
		if err := o.BeginDelivery(); err != nil {
			return 0, err
		}
		return l.transportTime, nil
	case StepCompleteDelivery:
		return 0, o.CompleteDelivery()
	case StepUnknown:
	}

	return 0, step.Validate()
}
