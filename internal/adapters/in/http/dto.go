package http

import (
	"github.com/shopspring/decimal"
)

// Request and response bodies of the API. Field names follow the schemas of
// openapi.json.

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CreatedID defines model for CreatedID.
type CreatedID struct {
	ID int `json:"id"`
}

// Customer defines model for Customer.
type Customer struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// CustomerTotal defines model for CustomerTotal.
type CustomerTotal struct {
	CustomerID int    `json:"customerId"`
	Total      string `json:"total"`
}

// CustomerRank defines model for CustomerRank.
type CustomerRank struct {
	Total     string   `json:"total"`
	Customers []string `json:"customers"`
}

// NewMenuItem defines model for NewMenuItem.
type NewMenuItem struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	PrepTime    int             `json:"prepTime"`
}

// FindItemsParams defines parameters for FindItems.
type FindItemsParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerID int `json:"customerId"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	Search   string `json:"search"`
	Quantity int    `json:"quantity"`
}

// OrderItemQuantity defines model for OrderItemQuantity.
type OrderItemQuantity struct {
	Quantity int `json:"quantity"`
}

// Order defines model for Order.
type Order struct {
	ID     int      `json:"id"`
	Status string   `json:"status"`
	Lines  []string `json:"lines"`
	Total  string   `json:"total"`
}

// Estimate defines model for Estimate.
type Estimate struct {
	EstimateMinutes int `json:"estimateMinutes"`
}
