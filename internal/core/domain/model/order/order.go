package order

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Line is one menu item of an order with its accumulated quantity.
type Line struct {
	Item     menu.Item
	Quantity int
}

// Amount returns price × quantity for the line.
func (l Line) Amount() kernel.Money {
	return l.Item.Price().Multiply(l.Quantity)
}

// String renders the line as "DESCRIPTION, QUANTITY".
func (l Line) String() string {
	return fmt.Sprintf("%s, %d", l.Item.Description(), l.Quantity)
}

// Order represents a food delivery order. It is the aggregate root that owns the
// line items and the lifecycle status.
//
// Order follows these invariants:
//   - Must have a positive identifier
//   - Quantities are always positive
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder constructor
type Order struct {
	// id is the creation position of the order, starting at 1
	id int

	// customerID is the id the order was placed for
	customerID int

	// status represents the current state in the order lifecycle
	status Status

	// lines holds the ordered items keyed by structural item identity
	lines map[menu.Key]Line

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an order in NEW status with no line items.
//
// Example:
//
//	o, err := order.NewOrder(1, customerID)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int, customerID int) (*Order, error) {
	order := &Order{
		customerID:    customerID,
		status:        New,
		lines:         make(map[menu.Key]Line),
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() int {
	return o.id
}

// CustomerID returns the id of the customer the order was placed for.
func (o *Order) CustomerID() int {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AddItem adds qty units of item and returns the item's total quantity in the order.
// Quantities of structurally equal items accumulate. On error the order is unchanged.
//
// Example:
//
//	qty, _ := o.AddItem(hamburger, 1) // qty == 1
//	qty, _ = o.AddItem(hamburger, 2)  // qty == 3
func (o *Order) AddItem(item menu.Item, qty int) (int, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}
	if qty <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", qty))
	}

	key := item.Key()
	line, ok := o.lines[key]
	if !ok {
		line = Line{Item: item}
	}
	line.Quantity += qty
	o.lines[key] = line

	return o.Quantity(item), nil
}

// Quantity returns how many units of item the order holds, zero if none.
func (o *Order) Quantity(item menu.Item) int {
	return o.lines[item.Key()].Quantity
}

// Lines returns the line items sorted by description, then category, then price.
// The sort only makes output stable; it carries no business meaning.
func (o *Order) Lines() []Line {
	lines := slices.Collect(maps.Values(o.lines))
	slices.SortFunc(lines, func(a, b Line) int {
		return cmp.Or(
			strings.Compare(a.Item.Description(), b.Item.Description()),
			strings.Compare(a.Item.Category(), b.Item.Category()),
			a.Item.Price().Compare(b.Item.Price()),
			cmp.Compare(a.Item.PrepTime(), b.Item.PrepTime()),
		)
	})
	return lines
}

// Total returns the sum of price × quantity over all line items.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.Amount())
	}
	return total
}

// LongestPrepTime returns the maximum preparation time over the line items,
// or zero for an empty order.
func (o *Order) LongestPrepTime() kernel.Minutes {
	var longest kernel.Minutes
	for _, line := range o.lines {
		longest = longest.Max(line.Item.PrepTime())
	}
	return longest
}

// Confirm moves the order from NEW to CONFIRMED.
func (o *Order) Confirm() error {
	return o.apply(o.status.Confirm)
}

// StartPreparation moves the order from CONFIRMED to PREPARATION.
func (o *Order) StartPreparation() error {
	return o.apply(o.status.StartPreparation)
}

// BeginDelivery moves the order from PREPARATION to ON_DELIVERY.
func (o *Order) BeginDelivery() error {
	return o.apply(o.status.BeginDelivery)
}

// CompleteDelivery moves the order from ON_DELIVERY to DELIVERED.
func (o *Order) CompleteDelivery() error {
	return o.apply(o.status.CompleteDelivery)
}

// Clone returns a deep copy. Items are immutable so lines are copied by value.
func (o *Order) Clone() *Order {
	clone := *o
	clone.lines = maps.Clone(o.lines)
	return &clone
}

// apply sets the status returned by transition, leaving it unchanged on error.
func (o *Order) apply(transition func() (Status, error)) error {
	newStatus, err := transition()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's identifier.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}
