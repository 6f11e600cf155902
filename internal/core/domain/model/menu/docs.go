// Package menu provides the Item value record and the search rules of the menu.
//
// Key business rules:
//   - Prices and preparation times are never negative
//   - Items are not unique; two items may share a description
//   - Item identity is structural over description, price, category and preparation time
//   - Search is a case-insensitive substring match on the description, and an empty
//     search matches every item
package menu
