package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// MenuItem is a sellable catalog entry. The catalog is maintained
// out-of-band; this service only reads it.
type MenuItem struct {
	bun.BaseModel `bun:"table:menu_items"`

	ID        string          `bun:"id,pk,default:gen_random_uuid()"`
	Name      string          `bun:"name"`
	Price     decimal.Decimal `bun:"price"`
	Category  string          `bun:"category"`
	Temp      *string         `bun:"temp"`
	Active    bool            `bun:"active"`
	SortOrder int             `bun:"sort_order"`
}
