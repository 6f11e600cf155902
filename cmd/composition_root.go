package cmd

import (
	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/core/application/delivery"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"

	"go.uber.org/zap"
)

type CompositionRoot struct {
	config     Config
	logger     *zap.Logger
	uowFactory *memory.UnitOfWorkFactory
	lifecycle  services.OrderLifecycle
}

// NewCompositionRoot wires a fresh ledger. Every root owns its own state.
func NewCompositionRoot(config Config, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewLedger()),
		lifecycle:  services.NewOrderLifecycle(config.StartupDelay, config.TransportTime),
	}
}

func (c *CompositionRoot) Service() *delivery.Service {
	return delivery.NewService(delivery.Handlers{
		RegisterCustomer: c.CreateRegisterCustomerCommandHandler(),
		AddMenuItem:      c.CreateAddMenuItemCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		AddOrderItem:     c.CreateAddOrderItemCommandHandler(),
		AdvanceOrder:     c.CreateAdvanceOrderCommandHandler(),

		GetCustomer:      queries.NewGetCustomerQueryHandler(c.uowFactory),
		ListCustomers:    queries.NewListCustomersQueryHandler(c.uowFactory),
		FindMenuItems:    queries.NewFindMenuItemsQueryHandler(c.uowFactory),
		GetOrder:         queries.NewGetOrderQueryHandler(c.uowFactory),
		GetCustomerTotal: queries.NewGetCustomerTotalQueryHandler(c.uowFactory),
		GetBestCustomers: queries.NewGetBestCustomersQueryHandler(c.uowFactory),
		GetItemRanking:   queries.NewGetItemRankingQueryHandler(c.uowFactory),
	}, c.logger)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.OrderMenuUoWFactory = FuncOrderMenuUoWFactory(func() commands.OrderMenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.lifecycle)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderMenuUoWFactory func() commands.OrderMenuUoW

func (f FuncOrderMenuUoWFactory) Create() commands.OrderMenuUoW {
	return f()
}
