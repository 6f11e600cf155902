package menu

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Key is the comparable structural identity of an Item. Two items with equal fields
// have equal keys, whatever the scale of their prices.
type Key struct {
	Description string
	Price       string
	Category    string
	PrepTime    kernel.Minutes
}

// Item is a dish on the menu. It is immutable.
type Item struct { //nolint:recvcheck //using for validation
	description string
	price       kernel.Money
	category    string
	prepTime    kernel.Minutes

	guard guard.ConstructorGuard
}

// NewItem validates and builds a menu Item.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("5.00")
//	item, err := menu.NewItem("Hamburger", price, "Fastfood", 10)
//	fmt.Println(item) // Output: [Fastfood] Hamburger: 5.00
func NewItem(description string, price kernel.Money, category string, prepTime int) (Item, error) {
	item := Item{
		description: description,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setPrice(price), item.setPrepTime(prepTime)); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was built by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Description() string {
	return i.description
}

func (i Item) Price() kernel.Money {
	return i.price
}

func (i Item) Category() string {
	return i.category
}

func (i Item) PrepTime() kernel.Minutes {
	return i.prepTime
}

// Key returns the structural identity of the item.
func (i Item) Key() Key {
	return Key{
		Description: i.description,
		Price:       i.price.Decimal().String(),
		Category:    i.category,
		PrepTime:    i.prepTime,
	}
}

// Matches reports whether search occurs in the description, ignoring case.
func (i Item) Matches(search string) bool {
	return strings.Contains(strings.ToLower(i.description), strings.ToLower(search))
}

// String renders the item as "[CATEGORY] DESCRIPTION: PRICE".
func (i Item) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.category, i.description, i.price)
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setPrepTime(prepTime int) error {
	minutes, err := kernel.NewMinutes(prepTime)
	if err != nil {
		return err
	}
	i.prepTime = minutes
	return nil
}

// Search returns the items matching search, in menu order.
func Search(items []Item, search string) []Item {
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Matches(search) {
			matched = append(matched, item)
		}
	}
	return matched
}

// CompareByCategory orders items by category, then by description.
func CompareByCategory(a, b Item) int {
	return cmp.Or(
		strings.Compare(a.category, b.category),
		strings.Compare(a.description, b.description),
	)
}

// Compare is a total order over structurally distinct items: category, description,
// price, then preparation time.
func Compare(a, b Item) int {
	return cmp.Or(
		CompareByCategory(a, b),
		a.price.Compare(b.price),
		cmp.Compare(a.prepTime, b.prepTime),
	)
}

// SortByCategory sorts items in place by category, then by description.
func SortByCategory(items []Item) {
	slices.SortStableFunc(items, CompareByCategory)
}
