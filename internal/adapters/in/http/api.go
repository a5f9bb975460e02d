package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListUserOrdersParams defines parameters for ListUserOrders.
type ListUserOrdersParams struct {
	UserName string  `form:"userName" json:"userName"`
	Status   *string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface represents all server handlers of openapi.yaml.
type ServerInterface interface {
	// (GET /health)
	Health(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/user)
	ListUserOrders(ctx echo.Context, params ListUserOrdersParams) error
	// (GET /orders/admin/active)
	ListActiveOrders(ctx echo.Context) error
	// (GET /orders/admin/history)
	ListCompletedOrders(ctx echo.Context) error
	// (GET /orders/admin/stats)
	GetOrderStats(ctx echo.Context) error
	// (PUT /orders/{id})
	EditOrder(ctx echo.Context, id int64) error
	// (POST /orders/{id}/duplicate)
	DuplicateOrder(ctx echo.Context, id int64) error
	// (POST /orders/{id}/complete)
	CompleteOrder(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListUserOrders(ctx echo.Context) error {
	var params ListUserOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "userName", ctx.QueryParams(), &params.UserName); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userName: %s", err))
	}

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListUserOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ListActiveOrders(ctx echo.Context) error {
	return w.Handler.ListActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) ListCompletedOrders(ctx echo.Context) error {
	return w.Handler.ListCompletedOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderStats(ctx echo.Context) error {
	return w.Handler.GetOrderStats(ctx)
}

func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.EditOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DuplicateOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DuplicateOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, id)
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of echo used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", wrapper.Health)
	router.POST("/orders", wrapper.CreateOrder)
	router.GET("/orders/user", wrapper.ListUserOrders)
	router.GET("/orders/admin/active", wrapper.ListActiveOrders)
	router.GET("/orders/admin/history", wrapper.ListCompletedOrders)
	router.GET("/orders/admin/stats", wrapper.GetOrderStats)
	router.PUT("/orders/:id", wrapper.EditOrder)
	router.POST("/orders/:id/duplicate", wrapper.DuplicateOrder)
	router.POST("/orders/:id/complete", wrapper.CompleteOrder)
}
