package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"roomservice/internal/core/application/usecases/commands"
	"roomservice/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const idempotencyHeader = "Idempotency-Key"

// Command and query handler contracts. The concrete handlers live in the
// usecases packages; command handlers are passed by pointer.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
	}
	EditOrderHandler interface {
		Handle(ctx context.Context, cmd commands.EditOrderCommand) error
	}
	DuplicateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DuplicateOrderCommand) (int64, error)
	}
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}
	UserOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderView, error)
	}
	ActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error)
	}
	CompletedOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetCompletedOrdersQuery) ([]queries.OrderView, error)
	}
	OrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
	}
)

// IdempotencyStore remembers which order a create request with a given
// Idempotency-Key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (int64, bool, error)
	Remember(ctx context.Context, scope, key string, id int64) error
}

// OperationRecorder counts command outcomes.
type OperationRecorder interface {
	ObserveOrderOperation(operation, outcome string)
}

// Handlers groups every use case the server delegates to.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	EditOrder       EditOrderHandler
	DuplicateOrder  DuplicateOrderHandler
	CompleteOrder   CompleteOrderHandler
	UserOrders      UserOrdersHandler
	ActiveOrders    ActiveOrdersHandler
	CompletedOrders CompletedOrdersHandler
	OrderStats      OrderStatsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers    Handlers
	idempotency IdempotencyStore
	recorder    OperationRecorder
	logger      *slog.Logger
}

// NewServer creates a new HTTP server. idempotency and recorder may be nil.
func NewServer(
	handlers Handlers,
	idempotency IdempotencyStore,
	recorder OperationRecorder,
	logger *slog.Logger,
) *Server {
	if idempotency == nil {
		idempotency = nopIdempotencyStore{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Server{
		handlers:    handlers,
		idempotency: idempotency,
		recorder:    recorder,
		logger:      logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, OKResponse{OK: true})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	reqCtx := ctx.Request().Context()
	key := ctx.Request().Header.Get(idempotencyHeader)
	if id, ok := s.replay(ctx, "create", key); ok {
		return replayedResponse(ctx, id)
	}

	cmd, err := commands.NewCreateOrderCommand(req.UserName, req.Room, req.Note, toItemInputs(req.Items), req.OriginalOrderID)
	if err != nil {
		s.recorder.ObserveOrderOperation("create", errorKind(err))
		return s.writeError(ctx, err)
	}

	id, err := s.handlers.CreateOrder.Handle(reqCtx, cmd)
	s.recorder.ObserveOrderOperation("create", errorKind(err))
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.remember(ctx, "create", key, id)
	return ctx.JSON(http.StatusCreated, IDResponse{ID: id})
}

// EditOrder handles PUT /orders/{id}.
func (s *Server) EditOrder(ctx echo.Context, id int64) error {
	var req EditOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewEditOrderCommand(id, req.Room, req.Note, toItemInputs(req.Items))
	if err != nil {
		s.recorder.ObserveOrderOperation("edit", errorKind(err))
		return s.writeError(ctx, err)
	}

	err = s.handlers.EditOrder.Handle(ctx.Request().Context(), cmd)
	s.recorder.ObserveOrderOperation("edit", errorKind(err))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OKResponse{OK: true})
}

// DuplicateOrder handles POST /orders/{id}/duplicate.
func (s *Server) DuplicateOrder(ctx echo.Context, id int64) error {
	scope := fmt.Sprintf("duplicate:%d", id)
	key := ctx.Request().Header.Get(idempotencyHeader)
	if replayedID, ok := s.replay(ctx, scope, key); ok {
		return replayedResponse(ctx, replayedID)
	}

	cmd, err := commands.NewDuplicateOrderCommand(id)
	if err != nil {
		s.recorder.ObserveOrderOperation("duplicate", errorKind(err))
		return s.writeError(ctx, err)
	}

	newID, err := s.handlers.DuplicateOrder.Handle(ctx.Request().Context(), cmd)
	s.recorder.ObserveOrderOperation("duplicate", errorKind(err))
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.remember(ctx, scope, key, newID)
	return ctx.JSON(http.StatusCreated, IDResponse{ID: newID})
}

// CompleteOrder handles POST /orders/{id}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		s.recorder.ObserveOrderOperation("complete", errorKind(err))
		return s.writeError(ctx, err)
	}

	err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	s.recorder.ObserveOrderOperation("complete", errorKind(err))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OKResponse{OK: true})
}

// ListUserOrders handles GET /orders/user.
func (s *Server) ListUserOrders(ctx echo.Context, params ListUserOrdersParams) error {
	status := ""
	if params.Status != nil {
		status = *params.Status
	}

	query, err := queries.NewGetUserOrdersQuery(params.UserName, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.UserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// ListActiveOrders handles GET /orders/admin/active.
func (s *Server) ListActiveOrders(ctx echo.Context) error {
	views, err := s.handlers.ActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// ListCompletedOrders handles GET /orders/admin/history.
func (s *Server) ListCompletedOrders(ctx echo.Context) error {
	views, err := s.handlers.CompletedOrders.Handle(ctx.Request().Context(), queries.NewGetCompletedOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// GetOrderStats handles GET /orders/admin/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.handlers.OrderStats.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatsResponse{Active: stats.Active, Completed: stats.Completed})
}

// replay returns the id a previous request with the same key produced. A store
// failure is logged and the request proceeds as if it were new.
func (s *Server) replay(ctx echo.Context, scope, key string) (int64, bool) {
	if key == "" {
		return 0, false
	}

	id, found, err := s.idempotency.Lookup(ctx.Request().Context(), scope, key)
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "idempotency lookup failed", "scope", scope, "error", err)
		return 0, false
	}
	return id, found
}

func replayedResponse(ctx echo.Context, id int64) error {
	ctx.Response().Header().Set("Idempotent-Replayed", "true")
	return ctx.JSON(http.StatusCreated, IDResponse{ID: id})
}

func (s *Server) remember(ctx echo.Context, scope, key string, id int64) {
	if key == "" {
		return
	}
	if err := s.idempotency.Remember(ctx.Request().Context(), scope, key, id); err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "idempotency remember failed", "scope", scope, "error", err)
	}
}

type nopIdempotencyStore struct{}

func (nopIdempotencyStore) Lookup(context.Context, string, string) (int64, bool, error) {
	return 0, false, nil
}

func (nopIdempotencyStore) Remember(context.Context, string, string, int64) error {
	return nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveOrderOperation(string, string) {}
