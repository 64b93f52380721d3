package order

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kedai-labs/kopitiam/internal/dto"
	"github.com/kedai-labs/kopitiam/internal/presentation/http/response"
	service "github.com/kedai-labs/kopitiam/internal/service/order"
	"github.com/kedai-labs/kopitiam/internal/view"
	"github.com/kedai-labs/kopitiam/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/kedai-labs/kopitiam/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/orders")
	g.GET("", h.listActive)
	g.GET("/history", h.history)
	g.POST("", h.create)
	g.PATCH("/:id/serve", h.serve)
	g.PATCH("/:id/cancel", h.cancel)
	g.PATCH("/:id/edit", h.edit)
}

func (h *Handler) listActive(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	orders, err := h.svc.ListActive(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.OrdersResponse{Orders: orders}).Build()
}

// history serves past orders grouped by calendar day. Filtering to
// served/cancelled happens here, not in the gateway.
func (h *Handler) history(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.history")
	defer span.End()

	orders, err := h.svc.ListAll(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.HistoryResponse{Days: view.OrdersByDay(orders)}).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateOrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("Invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create", trace.WithAttributes(
		attribute.Int("order.number", payload.OrderNumber),
	))
	defer span.End()

	orderID, err := h.svc.Create(ctx, payload)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.CreateOrderResponse{OK: true, OrderID: orderID}).Build()
}

func (h *Handler) serve(c echo.Context) error {
	return h.setStatus(c, "orders.serve", h.svc.Serve)
}

func (h *Handler) cancel(c echo.Context) error {
	return h.setStatus(c, "orders.cancel", h.svc.Cancel)
}

func (h *Handler) setStatus(c echo.Context, spanName string, apply func(ctx context.Context, id int64) error) error {
	b := response.New(c)

	id, err := orderID(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), spanName, trace.WithAttributes(
		attribute.Int64("order.id", id),
	))
	defer span.End()

	if err := apply(ctx, id); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.OKResponse{OK: true}).Build()
}

func (h *Handler) edit(c echo.Context) error {
	b := response.New(c)

	id, err := orderID(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	var payload dto.EditOrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("Invalid request", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.edit", trace.WithAttributes(
		attribute.Int64("order.id", id),
		attribute.Int("order.lines", len(payload.Items)),
	))
	defer span.End()

	if err := h.svc.Edit(ctx, id, payload.Items); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.OKResponse{OK: true}).Build()
}

func orderID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errorbank.BadRequest("Missing order ID")
	}
	return id, nil
}
