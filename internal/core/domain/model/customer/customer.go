package customer

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registered customer. It is immutable.
//
// Example:
//
//	c, err := customer.NewCustomer(1, "Jon Snow", "Castle Black", "555-0100", "jon@wall.org")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(c) // Output: Jon Snow, Castle Black, 555-0100, jon@wall.org
type Customer struct { //nolint:recvcheck //using for validation
	id      int
	name    string
	address string
	phone   string
	email   string

	guard guard.ConstructorGuard
}

// NewCustomer validates and builds a Customer. The id must be positive and the email,
// which is the identity key, must not be blank.
func NewCustomer(id int, name, address, phone, email string) (Customer, error) {
	c := Customer{
		name:    name,
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setEmail(email)); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// Validate ensures the customer was built by NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the registration position of the customer, starting at 1.
func (c Customer) ID() int {
	return c.id
}

// Name returns the customer name.
func (c Customer) Name() string {
	return c.name
}

// Address returns the delivery address.
func (c Customer) Address() string {
	return c.address
}

// Phone returns the phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the identity key.
func (c Customer) Email() string {
	return c.email
}

// String renders the customer as "NAME, ADDRESS, PHONE, EMAIL".
func (c Customer) String() string {
	return strings.Join([]string{c.name, c.address, c.phone, c.email}, ", ")
}

func (c *Customer) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
