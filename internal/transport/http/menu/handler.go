package menu

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/kedai-labs/kopitiam/internal/dto"
	"github.com/kedai-labs/kopitiam/internal/presentation/http/response"
	service "github.com/kedai-labs/kopitiam/internal/service/menu"
)

var httpTracer = otel.Tracer("github.com/kedai-labs/kopitiam/transport/http/menu")

// Handler exposes the catalog over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a menu Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/menu", h.list)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "menu.list")
	defer span.End()

	items, err := h.svc.ListActive(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.MenuResponse{Items: items}).Build()
}
