// Package delivery is the in-process surface of the food delivery back office.
//
// A Service registers customers, maintains the menu, places orders and moves them
// through NEW → CONFIRMED → PREPARATION → ON_DELIVERY → DELIVERED while estimating
// delivery times. Each Service owns its ledger; build one per process (or per test)
// through the composition root.
//
// Example:
//
//	svc := root.Service()
//	id, _ := svc.RegisterCustomer(ctx, "Jon Snow", "The Wall", "555-0101", "jon@wall.org")
//	_ = svc.AddMenuItem(ctx, "Hamburger", decimal.RequireFromString("5.00"), "Burger", 10)
//	orderID, _ := svc.CreateOrder(ctx, id)
//	_, _ = svc.AddItemToOrder(ctx, orderID, "hamburger", 2)
//	eta, _ := svc.Confirm(ctx, orderID) // 5 + 10 + 15
package delivery

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Status is the lifecycle status of an order.
type Status = order.Status

const (
	StatusNew         = order.New
	StatusConfirmed   = order.Confirmed
	StatusPreparation = order.Preparation
	StatusOnDelivery  = order.OnDelivery
	StatusDelivered   = order.Delivered
)

// CustomerRank is one row of BestCustomers: every customer whose orders add up to Total.
type CustomerRank struct {
	Total     decimal.Decimal
	Customers []string
}

// OrderView is one order read from a single snapshot of the ledger.
type OrderView struct {
	ID         int
	CustomerID int
	Status     Status
	Lines      []string
	Total      decimal.Decimal
}

// Handlers are the use cases a Service delegates to.
type Handlers struct {
	RegisterCustomer commands.RegisterCustomerCommandHandler
	AddMenuItem      commands.AddMenuItemCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	AddOrderItem     commands.AddOrderItemCommandHandler
	AdvanceOrder     commands.AdvanceOrderCommandHandler

	GetCustomer      queries.GetCustomerQueryHandler
	ListCustomers    queries.ListCustomersQueryHandler
	FindMenuItems    queries.FindMenuItemsQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetCustomerTotal queries.GetCustomerTotalQueryHandler
	GetBestCustomers queries.GetBestCustomersQueryHandler
	GetItemRanking   queries.GetItemRankingQueryHandler
}

// Service is the delivery back office facade. It is safe for concurrent use.
type Service struct {
	h      Handlers
	logger *zap.Logger
}

// NewService creates a facade over h. A nil logger disables logging.
func NewService(h Handlers, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{h: h, logger: logger.Named("delivery")}
}

// RegisterCustomer stores a customer and returns its id, its 1-based registration
// position. Registering an email twice fails with ErrDuplicateCustomer.
func (s *Service) RegisterCustomer(ctx context.Context, name, address, phone, email string) (int, error) {
	cmd, err := commands.NewRegisterCustomerCommand(name, address, phone, email)
	if err != nil {
		return 0, s.fail("register customer", err, zap.String("email", email))
	}

	id, err := s.h.RegisterCustomer.Handle(ctx, cmd)
	if err != nil {
		return 0, s.fail("register customer", err, zap.String("email", email))
	}

	s.logger.Info("customer registered", zap.Int("customer_id", id), zap.String("email", email))
	return id, nil
}

// DescribeCustomer renders the customer registered at position customerID as
// "NAME, ADDRESS, PHONE, EMAIL". Unknown positions fail with ErrUnknownCustomer.
func (s *Service) DescribeCustomer(ctx context.Context, customerID int) (string, error) {
	c, err := s.h.GetCustomer.Handle(ctx, queries.NewGetCustomerQuery(customerID))
	if err != nil {
		return "", s.fail("describe customer", err, zap.Int("customer_id", customerID))
	}
	return c.Description, nil
}

// ListCustomers returns every customer description sorted ascending.
func (s *Service) ListCustomers(ctx context.Context) ([]string, error) {
	customers, err := s.h.ListCustomers.Handle(ctx, queries.NewListCustomersQuery())
	if err != nil {
		return nil, s.fail("list customers", err)
	}

	descriptions := make([]string, 0, len(customers))
	for _, c := range customers {
		descriptions = append(descriptions, c.Description)
	}
	return descriptions, nil
}

// AddMenuItem appends an item to the menu. Equal items are not merged.
func (s *Service) AddMenuItem(
	ctx context.Context,
	description string,
	price decimal.Decimal,
	category string,
	prepTime int,
) error {
	cmd, err := commands.NewAddMenuItemCommand(description, price, category, prepTime)
	if err != nil {
		return s.fail("add menu item", err, zap.String("description", description))
	}

	if err = s.h.AddMenuItem.Handle(ctx, cmd); err != nil {
		return s.fail("add menu item", err, zap.String("description", description))
	}

	s.logger.Info("menu item added",
		zap.String("description", description),
		zap.String("category", category),
		zap.String("price", price.StringFixed(2)),
		zap.Int("prep_time_minutes", prepTime))
	return nil
}

// FindItems returns "[CATEGORY] DESCRIPTION: PRICE" for every item whose description
// contains search, ignoring case, sorted by category then description.
func (s *Service) FindItems(ctx context.Context, search string) ([]string, error) {
	items, err := s.h.FindMenuItems.Handle(ctx, queries.NewFindMenuItemsQuery(search))
	if err != nil {
		return nil, s.fail("find items", err, zap.String("search", search))
	}

	displays := make([]string, 0, len(items))
	for _, item := range items {
		displays = append(displays, item.Display)
	}
	return displays, nil
}

// CreateOrder opens an order in NEW status and returns its id.
// The customer id is not checked.
func (s *Service) CreateOrder(ctx context.Context, customerID int) (int, error) {
	id, err := s.h.CreateOrder.Handle(ctx, commands.NewCreateOrderCommand(customerID))
	if err != nil {
		return 0, s.fail("create order", err, zap.Int("customer_id", customerID))
	}

	s.logger.Info("order created", zap.Int("order_id", id), zap.Int("customer_id", customerID))
	return id, nil
}

// AddItemToOrder adds qty units of the single menu item matching search and returns
// the item's accumulated quantity in the order.
func (s *Service) AddItemToOrder(ctx context.Context, orderID int, search string, qty int) (int, error) {
	fields := []zap.Field{zap.Int("order_id", orderID), zap.String("search", search), zap.Int("quantity", qty)}

	cmd, err := commands.NewAddOrderItemCommand(orderID, search, qty)
	if err != nil {
		return 0, s.fail("add item to order", err, fields...)
	}

	total, err := s.h.AddOrderItem.Handle(ctx, cmd)
	if err != nil {
		return 0, s.fail("add item to order", err, fields...)
	}

	s.logger.Info("item added to order", append(fields, zap.Int("total_quantity", total))...)
	return total, nil
}

// GetOrder returns the order's lines, total and status read together, so they
// always agree with each other under concurrent updates.
func (s *Service) GetOrder(ctx context.Context, orderID int) (OrderView, error) {
	o, err := s.order(ctx, "get order", orderID)
	if err != nil {
		return OrderView{}, err
	}

	lines := make([]string, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, line.Display)
	}
	return OrderView{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		Lines:      lines,
		Total:      o.Total.Decimal(),
	}, nil
}

// ShowOrder returns "DESCRIPTION, QUANTITY" per line item, sorted by description.
func (s *Service) ShowOrder(ctx context.Context, orderID int) ([]string, error) {
	o, err := s.order(ctx, "show order", orderID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, line.Display)
	}
	return lines, nil
}

// OrderTotal returns Σ price × quantity over the order's line items.
func (s *Service) OrderTotal(ctx context.Context, orderID int) (decimal.Decimal, error) {
	o, err := s.order(ctx, "order total", orderID)
	if err != nil {
		return decimal.Zero, err
	}
	return o.Total.Decimal(), nil
}

// OrderStatus returns the order's lifecycle status.
func (s *Service) OrderStatus(ctx context.Context, orderID int) (Status, error) {
	o, err := s.order(ctx, "order status", orderID)
	if err != nil {
		return order.Unknown, err
	}
	return o.Status, nil
}

// Confirm moves the order from NEW to CONFIRMED and returns the full delivery
// estimate: startup delay + longest preparation time + transport time.
func (s *Service) Confirm(ctx context.Context, orderID int) (int, error) {
	return s.advance(ctx, orderID, services.StepConfirm)
}

// StartPreparation moves the order from CONFIRMED to PREPARATION and returns
// longest preparation time + transport time.
func (s *Service) StartPreparation(ctx context.Context, orderID int) (int, error) {
	return s.advance(ctx, orderID, services.StepStartPreparation)
}

// BeginDelivery moves the order from PREPARATION to ON_DELIVERY and returns the
// transport time.
func (s *Service) BeginDelivery(ctx context.Context, orderID int) (int, error) {
	return s.advance(ctx, orderID, services.StepBeginDelivery)
}

// CompleteDelivery moves the order from ON_DELIVERY to DELIVERED.
func (s *Service) CompleteDelivery(ctx context.Context, orderID int) error {
	_, err := s.advance(ctx, orderID, services.StepCompleteDelivery)
	return err
}

// CustomerTotal sums every order total of the customer in any status.
// An id without orders yields zero.
func (s *Service) CustomerTotal(ctx context.Context, customerID int) (decimal.Decimal, error) {
	total, err := s.h.GetCustomerTotal.Handle(ctx, queries.NewGetCustomerTotalQuery(customerID))
	if err != nil {
		return decimal.Zero, s.fail("customer total", err, zap.Int("customer_id", customerID))
	}
	return total.Decimal(), nil
}

// BestCustomers groups customers by identical total spend, highest first.
// Customers without orders are not ranked.
func (s *Service) BestCustomers(ctx context.Context) ([]CustomerRank, error) {
	ranks, err := s.h.GetBestCustomers.Handle(ctx, queries.NewGetBestCustomersQuery())
	if err != nil {
		return nil, s.fail("best customers", err)
	}

	result := make([]CustomerRank, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, CustomerRank{Total: rank.Total.Decimal(), Customers: rank.Customers})
	}
	return result, nil
}

// BestItems returns "DESCRIPTION, AMOUNT" per ordered item, highest amount first.
func (s *Service) BestItems(ctx context.Context) ([]string, error) {
	return s.rankItems(ctx, "best items", queries.RankItemsByAmount)
}

// PopularItems returns "DESCRIPTION, QUANTITY" per ordered item, highest quantity first.
func (s *Service) PopularItems(ctx context.Context) ([]string, error) {
	return s.rankItems(ctx, "popular items", queries.RankItemsByQuantity)
}

func (s *Service) order(ctx context.Context, op string, orderID int) (queries.GetOrderQueryResponse, error) {
	o, err := s.h.GetOrder.Handle(ctx, queries.NewGetOrderQuery(orderID))
	if err != nil {
		return queries.GetOrderQueryResponse{}, s.fail(op, err, zap.Int("order_id", orderID))
	}
	return o, nil
}

func (s *Service) advance(ctx context.Context, orderID int, step services.Step) (int, error) {
	op := step.String()

	cmd, err := commands.NewAdvanceOrderCommand(orderID, step)
	if err != nil {
		return 0, s.fail(op, err, zap.Int("order_id", orderID))
	}

	estimate, err := s.h.AdvanceOrder.Handle(ctx, cmd)
	if err != nil {
		return 0, s.fail(op, err, zap.Int("order_id", orderID))
	}

	s.logger.Info("order advanced",
		zap.Int("order_id", orderID),
		zap.String("step", op),
		zap.Stringer("status", step.Target()),
		zap.Int("estimate_minutes", estimate.Int()))
	return estimate.Int(), nil
}

func (s *Service) rankItems(ctx context.Context, op string, by queries.RankItemsBy) ([]string, error) {
	query, err := queries.NewGetItemRankingQuery(by)
	if err != nil {
		return nil, s.fail(op, err)
	}

	items, err := s.h.GetItemRanking.Handle(ctx, query)
	if err != nil {
		return nil, s.fail(op, err)
	}

	displays := make([]string, 0, len(items))
	for _, item := range items {
		displays = append(displays, item.Display)
	}
	return displays, nil
}

// fail logs a failed operation and returns err unchanged.
func (s *Service) fail(op string, err error, fields ...zap.Field) error {
	s.logger.Warn(op+" failed", append(fields, zap.Error(err))...)
	return err
}
