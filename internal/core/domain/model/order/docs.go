// Package order provides domain entities and business logic for order management
// in the food delivery ledger. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders have a positive id assigned in creation order
//   - Order status follows a fixed workflow: NEW -> CONFIRMED -> PREPARATION -> ON_DELIVERY -> DELIVERED
//   - Every transition happens exactly once per order; no step can be skipped or undone
//   - Line item quantities are positive and accumulate when the same item is added again
//   - The customer id is recorded as given; it is not checked against registered customers
package order
