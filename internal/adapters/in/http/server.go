// Package http exposes the order management API over HTTP.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"
	"strconv"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the identity recorded in the order's status history
// and on approval decisions. Requests without it act as the system.
const ActorHeader = "X-Actor"

// Server holds the command and query handlers behind the API endpoints.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	submitForApprovalHandler commands.SubmitForApprovalCommandHandler
	processApprovalHandler   commands.ProcessApprovalCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getOrdersHandler           queries.GetOrdersQueryHandler
	getOrderHistoryHandler     queries.GetOrderHistoryQueryHandler
	getPendingApprovalsHandler queries.GetPendingApprovalsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	submitForApprovalHandler commands.SubmitForApprovalCommandHandler,
	processApprovalHandler commands.ProcessApprovalCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getPendingApprovalsHandler queries.GetPendingApprovalsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		submitForApprovalHandler:   submitForApprovalHandler,
		processApprovalHandler:     processApprovalHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrderHistoryHandler:     getOrderHistoryHandler,
		getPendingApprovalsHandler: getPendingApprovalsHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id", s.UpdateOrder)
	v1.POST("/orders/:id/submit-approval", s.SubmitForApproval)
	v1.POST("/orders/:id/approve", s.ProcessApproval)
	v1.GET("/orders/:id/history", s.GetOrderHistory)
	v1.GET("/pending-approvals", s.GetPendingApprovals)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.Notes,
		toItemInputs(req.Items),
		actor(ctx),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(aggregate))
}

// GetOrders handles GET /api/v1/orders - lists orders newest first.
// Supports page, per_page and status query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, err := intParam(ctx, "page")
	if err != nil {
		return writeBadRequest(ctx, "page must be an integer")
	}
	perPage, err := intParam(ctx, "per_page")
	if err != nil {
		return writeBadRequest(ctx, "per_page must be an integer")
	}

	query, err := queries.NewGetOrdersQuery(page, perPage, ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]OrderSummary, 0, len(result.Orders))
	for _, summary := range result.Orders {
		orders = append(orders, OrderSummary{
			ID:          summary.ID.String(),
			Number:      summary.Number,
			Status:      summary.Status,
			Notes:       summary.Notes,
			TotalAmount: summary.TotalAmount,
			CreatedAt:   summary.CreatedAt,
			UpdatedAt:   summary.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Orders:  orders,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

// GetOrder handles GET /api/v1/orders/:id - returns one order with items,
// approvals and history.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(result))
}

// UpdateOrder handles PUT /api/v1/orders/:id - replaces the order's notes
// and items.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.Notes, toItemInputs(req.Items), actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate))
}

// SubmitForApproval handles POST /api/v1/orders/:id/submit-approval - moves
// the order into the approval workflow, or auto-approves it below the
// threshold.
func (s *Server) SubmitForApproval(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	cmd, err := commands.NewSubmitForApprovalCommand(orderID, actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.submitForApprovalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate))
}

// ProcessApproval handles POST /api/v1/orders/:id/approve - records an
// approval decision at one level. The approver identity comes from the
// X-Actor header.
func (s *Server) ProcessApproval(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	var req ApprovalRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewProcessApprovalCommand(
		orderID,
		order.Level(req.Level),
		order.ApprovalStatus(req.Decision),
		ctx.Request().Header.Get(ActorHeader),
		req.Notes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.processApprovalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(aggregate))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - returns the
// order's audit trail newest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid order ID")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyResponses(history))
}

// GetPendingApprovals handles GET /api/v1/pending-approvals - returns all
// undecided approval records, longest waiting first.
func (s *Server) GetPendingApprovals(ctx echo.Context) error {
	result, err := s.getPendingApprovalsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingApprovalsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	pending := make([]PendingApprovalItem, 0, len(result))
	for _, entry := range result {
		pending = append(pending, PendingApprovalItem{
			ApprovalID:   entry.ApprovalID.String(),
			OrderID:      entry.OrderID.String(),
			OrderNumber:  entry.OrderNumber,
			Level:        entry.Level,
			TotalAmount:  entry.TotalAmount,
			WaitingSince: entry.WaitingSince,
		})
	}

	return ctx.JSON(http.StatusOK, pending)
}

// actor extracts the acting identity from the request headers.
// An absent header means the system acts on its own behalf.
func actor(ctx echo.Context) string {
	return ctx.Request().Header.Get(ActorHeader)
}

// orderIDParam parses the :id path parameter.
func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// intParam parses an optional integer query parameter, zero when absent.
func intParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
