package dto

import "github.com/shopspring/decimal"

// MenuItemResponse is a catalog entry as exposed over HTTP.
type MenuItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Temp      *string         `json:"temp"`
	Active    bool            `json:"active"`
	SortOrder int             `json:"sort_order"`
}

// MenuResponse wraps the active menu listing.
type MenuResponse struct {
	Items []MenuItemResponse `json:"items"`
}
