// Package cart is the register-local order composition buffer. It never
// touches I/O; a cart only becomes durable when projected to an order
// payload and submitted through the order service.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/kedai-labs/kopitiam/internal/dto"
	"github.com/kedai-labs/kopitiam/internal/entity"
)

// Item is one cart entry. UnitPrice is snapshotted when the item is first
// added, so a catalog price change mid-composition does not move the line.
type Item struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Cart holds entries in the order the operator added them. Quantities in
// a cart are always positive; zero-quantity entries are pruned, never kept.
type Cart struct {
	Items []Item
}

// Add increments the entry matching the menu item, or appends a new entry
// with quantity 1 carrying the item's current price.
func (c *Cart) Add(item entity.MenuItem) {
	for i := range c.Items {
		if c.Items[i].ItemID == item.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{
		ItemID:    item.ID,
		Name:      item.Name,
		Quantity:  1,
		UnitPrice: item.Price,
	})
}

// Decrement lowers the entry's quantity by one, removing the entry when
// it reaches zero. Unknown ids are ignored.
func (c *Cart) Decrement(itemID string) {
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		c.Items[i].Quantity--
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// Total is the advisory display total: Σ unit_price × quantity. The
// server recomputes the authoritative total from the same payload with
// the same decimal arithmetic, so the two can never diverge.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Payload projects the cart to the create-order item shape.
func (c *Cart) Payload(orderNumber int) dto.CreateOrderRequest {
	items := make([]dto.OrderItemPayload, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, dto.OrderItemPayload{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return dto.CreateOrderRequest{
		OrderNumber: orderNumber,
		Items:       items,
	}
}

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}
