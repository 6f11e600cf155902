// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the food delivery ledger. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderLifecycle: advances an order one lifecycle step and estimates the remaining
//     delivery time from its live line items
//   - Ranking: aggregates orders into customer and item rankings
package services
