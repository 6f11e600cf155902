// Package http exposes the delivery back office over a JSON API served by echo.
// The contract is the embedded openapi.json; every /api/v1 request is validated
// against it before it reaches a handler.
package http

import (
	"context"
	"net/http"

	"fooddelivery/internal/core/application/delivery"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// DeliveryService is the part of delivery.Service the API serves.
type DeliveryService interface {
	RegisterCustomer(ctx context.Context, name, address, phone, email string) (int, error)
	DescribeCustomer(ctx context.Context, customerID int) (string, error)
	ListCustomers(ctx context.Context) ([]string, error)
	AddMenuItem(ctx context.Context, description string, price decimal.Decimal, category string, prepTime int) error
	FindItems(ctx context.Context, search string) ([]string, error)
	CreateOrder(ctx context.Context, customerID int) (int, error)
	AddItemToOrder(ctx context.Context, orderID int, search string, qty int) (int, error)
	GetOrder(ctx context.Context, orderID int) (delivery.OrderView, error)
	Confirm(ctx context.Context, orderID int) (int, error)
	StartPreparation(ctx context.Context, orderID int) (int, error)
	BeginDelivery(ctx context.Context, orderID int) (int, error)
	CompleteDelivery(ctx context.Context, orderID int) error
	CustomerTotal(ctx context.Context, customerID int) (decimal.Decimal, error)
	BestCustomers(ctx context.Context) ([]delivery.CustomerRank, error)
	BestItems(ctx context.Context) ([]string, error)
	PopularItems(ctx context.Context) ([]string, error)
}

// Server implements the API operations over a DeliveryService.
type Server struct {
	svc DeliveryService
}

// NewServer creates a new HTTP server over svc.
func NewServer(svc DeliveryService) *Server {
	return &Server{svc: svc}
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := s.svc.RegisterCustomer(ctx.Request().Context(), body.Name, body.Address, body.Phone, body.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedID{ID: id})
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.svc.ListCustomers(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, customers)
}

// DescribeCustomer handles GET /api/v1/customers/{customerId}.
func (s *Server) DescribeCustomer(ctx echo.Context, customerID int) error {
	description, err := s.svc.DescribeCustomer(ctx.Request().Context(), customerID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Customer{ID: customerID, Description: description})
}

// CustomerTotal handles GET /api/v1/customers/{customerId}/total.
func (s *Server) CustomerTotal(ctx echo.Context, customerID int) error {
	total, err := s.svc.CustomerTotal(ctx.Request().Context(), customerID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CustomerTotal{CustomerID: customerID, Total: total.StringFixed(2)})
}

// BestCustomers handles GET /api/v1/customers/ranking.
func (s *Server) BestCustomers(ctx echo.Context) error {
	ranks, err := s.svc.BestCustomers(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CustomerRank, len(ranks))
	for i, rank := range ranks {
		response[i] = CustomerRank{Total: rank.Total.StringFixed(2), Customers: rank.Customers}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu/items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	err := s.svc.AddMenuItem(ctx.Request().Context(), body.Description, body.Price, body.Category, body.PrepTime)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// FindItems handles GET /api/v1/menu/items?search=. A missing search lists the
// whole menu.
func (s *Server) FindItems(ctx echo.Context, params FindItemsParams) error {
	var search string
	if params.Search != nil {
		search = *params.Search
	}

	items, err := s.svc.FindItems(ctx.Request().Context(), search)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, items)
}

// BestItems handles GET /api/v1/menu/items/ranking.
func (s *Server) BestItems(ctx echo.Context) error {
	items, err := s.svc.BestItems(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, items)
}

// PopularItems handles GET /api/v1/menu/items/popular.
func (s *Server) PopularItems(ctx echo.Context) error {
	items, err := s.svc.PopularItems(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, items)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := s.svc.CreateOrder(ctx.Request().Context(), body.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedID{ID: id})
}

// AddItemToOrder handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddItemToOrder(ctx echo.Context, orderID int) error {
	var body NewOrderItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	qty, err := s.svc.AddItemToOrder(ctx.Request().Context(), orderID, body.Search, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderItemQuantity{Quantity: qty})
}

// ShowOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) ShowOrder(ctx echo.Context, orderID int) error {
	view, err := s.svc.GetOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:     view.ID,
		Status: view.Status.String(),
		Lines:  view.Lines,
		Total:  view.Total.StringFixed(2),
	})
}

// Confirm handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) Confirm(ctx echo.Context, orderID int) error {
	return s.estimate(ctx, orderID, s.svc.Confirm)
}

// StartPreparation handles POST /api/v1/orders/{orderId}/start.
func (s *Server) StartPreparation(ctx echo.Context, orderID int) error {
	return s.estimate(ctx, orderID, s.svc.StartPreparation)
}

// BeginDelivery handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) BeginDelivery(ctx echo.Context, orderID int) error {
	return s.estimate(ctx, orderID, s.svc.BeginDelivery)
}

// CompleteDelivery handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, orderID int) error {
	return s.estimate(ctx, orderID, func(c context.Context, id int) (int, error) {
		return 0, s.svc.CompleteDelivery(c, id)
	})
}

func (s *Server) estimate(ctx echo.Context, orderID int, step func(context.Context, int) (int, error)) error {
	minutes, err := step(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Estimate{EstimateMinutes: minutes})
}

// bindPathID binds an integer path parameter the way the API contract styles it.
func bindPathID(ctx echo.Context, name string) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}
