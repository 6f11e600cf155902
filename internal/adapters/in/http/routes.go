package http

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// wrapper converts echo contexts to parameters.
type wrapper struct {
	handler *Server
}

func (w wrapper) withOrderID(next func(echo.Context, int) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindPathID(ctx, "orderId")
		if err != nil {
			return badRequest(ctx, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
		}
		return next(ctx, id)
	}
}

func (w wrapper) withCustomerID(next func(echo.Context, int) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindPathID(ctx, "customerId")
		if err != nil {
			return badRequest(ctx, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
		}
		return next(ctx, id)
	}
}

func (w wrapper) findItems(ctx echo.Context) error {
	var params FindItemsParams
	if err := runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search); err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}
	return w.handler.FindItems(ctx, params)
}

// RegisterHandlers mounts the API under /api/v1 behind the OpenAPI request validator
// and serves the API docs under /swagger/.
func RegisterHandlers(ctx context.Context, router *echo.Echo, si *Server) error {
	swagger, err := GetSwagger(ctx)
	if err != nil {
		return err
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return err
	}

	w := wrapper{handler: si}
	api := router.Group("/api/v1", validator)

	api.POST("/customers", si.RegisterCustomer)
	api.GET("/customers", si.ListCustomers)
	api.GET("/customers/ranking", si.BestCustomers)
	api.GET("/customers/:customerId", w.withCustomerID(si.DescribeCustomer))
	api.GET("/customers/:customerId/total", w.withCustomerID(si.CustomerTotal))

	api.POST("/menu/items", si.AddMenuItem)
	api.GET("/menu/items", w.findItems)
	api.GET("/menu/items/ranking", si.BestItems)
	api.GET("/menu/items/popular", si.PopularItems)

	api.POST("/orders", si.CreateOrder)
	api.GET("/orders/:orderId", w.withOrderID(si.ShowOrder))
	api.POST("/orders/:orderId/items", w.withOrderID(si.AddItemToOrder))
	api.POST("/orders/:orderId/confirm", w.withOrderID(si.Confirm))
	api.POST("/orders/:orderId/start", w.withOrderID(si.StartPreparation))
	api.POST("/orders/:orderId/deliver", w.withOrderID(si.BeginDelivery))
	api.POST("/orders/:orderId/complete", w.withOrderID(si.CompleteDelivery))

	router.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}
