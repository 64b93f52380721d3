package board

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/kedai-labs/kopitiam/internal/board"
	"github.com/kedai-labs/kopitiam/internal/dto"
	"github.com/kedai-labs/kopitiam/internal/presentation/http/response"
	"github.com/kedai-labs/kopitiam/internal/waitnum"
)

var httpTracer = otel.Tracer("github.com/kedai-labs/kopitiam/transport/http/board")

// Handler serves the counter display snapshot and the waiting-number
// pool.
type Handler struct {
	poller *board.Poller
}

// NewHandler constructs a board Handler.
func NewHandler(poller *board.Poller) *Handler {
	return &Handler{poller: poller}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/board", h.snapshot)
	e.GET("/numbers", h.numbers)
}

func (h *Handler) snapshot(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "board.snapshot")
	defer span.End()

	snapshot, err := h.poller.Snapshot(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(snapshot).Build()
}

// numbers reports the free waiting numbers and suggests one at random.
// With ?selected=N it also checks whether that earlier selection went
// stale, which forces the register to re-pick.
func (h *Handler) numbers(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "board.numbers")
	defer span.End()

	snapshot, err := h.poller.Snapshot(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	resp := dto.NumbersResponse{Available: snapshot.AvailableNumbers}
	if pick, ok := waitnum.Pick(snapshot.AvailableNumbers); ok {
		resp.Suggestion = &pick
	}
	if raw := c.QueryParam("selected"); raw != "" {
		if selected, err := strconv.Atoi(raw); err == nil {
			stale := waitnum.Stale(selected, snapshot.AvailableNumbers)
			resp.Stale = &stale
		}
	}
	return b.WithData(resp).Build()
}
