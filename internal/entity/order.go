package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusActive    OrderStatus = "active"
	StatusServed    OrderStatus = "served"
	StatusCancelled OrderStatus = "cancelled"
)

// ParseStatus validates a wire-level status string.
func ParseStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusActive, StatusServed, StatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// Terminal reports whether the order has left the active board. Status
// updates are unconditional overwrites, so this marks presentation
// (history vs board) rather than a transition guard.
func (s OrderStatus) Terminal() bool {
	return s == StatusServed || s == StatusCancelled
}

// Order is a customer order identified at the counter by its waiting
// number. OrderNumber is a 1..N token reused once the order leaves the
// active status; it is not a durable identifier.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID          int64           `bun:",pk,autoincrement"`
	OrderNumber int             `bun:"order_number"`
	Total       decimal.Decimal `bun:"total"`
	Status      OrderStatus     `bun:"status"`
	CreatedAt   time.Time       `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`

	Items []*OrderItem `bun:"rel:has-many,join:id=order_id"`
}

// OrderItem is one line of an order. UnitPrice is captured when the line
// is written and never re-derived from the catalog, so later menu price
// changes leave historical orders untouched. Lines are replaced wholesale
// on edit, never patched per row.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_items"`

	ID        int64           `bun:",pk,autoincrement"`
	OrderID   int64           `bun:"order_id"`
	ItemID    string          `bun:"item_id"`
	Quantity  int             `bun:"quantity"`
	UnitPrice decimal.Decimal `bun:"unit_price"`

	// Read-time join for display names only; never written through.
	Item *MenuItem `bun:"rel:belongs-to,join:item_id=id"`
}
