package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemPayload is one submitted order line. UnitPrice is the price
// snapshotted by the register at add-to-cart time; the server recomputes
// the total from these values but never swaps in current catalog prices.
type OrderItemPayload struct {
	ItemID    string          `json:"item_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	OrderNumber int                `json:"order_number"`
	Items       []OrderItemPayload `json:"items"`
}

// EditOrderRequest is the PATCH /orders/:id/edit body. The submitted set
// replaces the order's lines wholesale.
type EditOrderRequest struct {
	Items []OrderItemPayload `json:"items"`
}

// OrderItemResponse is an order line with its read-time display name.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse is an order as exposed over HTTP.
type OrderResponse struct {
	ID          int64               `json:"id"`
	OrderNumber int                 `json:"order_number"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
}

// OrdersResponse wraps the active-orders listing.
type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// CreateOrderResponse acknowledges a submitted order.
type CreateOrderResponse struct {
	OK      bool  `json:"ok"`
	OrderID int64 `json:"order_id"`
}

// OKResponse acknowledges a mutation with no payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// DayGroup is one calendar day of finished orders in the history view.
type DayGroup struct {
	Date   string          `json:"date"`
	Orders []OrderResponse `json:"orders"`
}

// HistoryResponse wraps the day-grouped history listing.
type HistoryResponse struct {
	Days []DayGroup `json:"days"`
}

// NumbersResponse lists free waiting numbers plus a random suggestion.
// Stale is set when the caller passed a previously selected number that
// has since been taken and must be re-picked.
type NumbersResponse struct {
	Available  []int `json:"available"`
	Suggestion *int  `json:"suggestion,omitempty"`
	Stale      *bool `json:"stale,omitempty"`
}

// BoardSnapshot is the cached counter-display state refreshed by the
// board poller.
type BoardSnapshot struct {
	Orders           []OrderResponse `json:"orders"`
	AvailableNumbers []int           `json:"available_numbers"`
	RefreshedAt      time.Time       `json:"refreshed_at"`
}
