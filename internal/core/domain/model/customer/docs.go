// Package customer provides the Customer value record of the food delivery domain.
//
// Key business rules:
//   - A customer is identified by email, which must not be empty
//   - Customer ids are dense positive integers assigned in registration order
//   - Customers are immutable once registered and are never deleted
package customer
