// Package kernel provides the shared value objects of the food delivery domain.
//
// The package includes:
//   - Money: a non-negative decimal amount used for menu prices and order totals
//   - Minutes: a non-negative duration used for preparation and delivery estimates
//
// Values are immutable; arithmetic returns new values.
package kernel
