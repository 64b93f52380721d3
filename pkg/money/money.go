// Package money renders amounts in the operator's currency and locale.
// Amounts are always shown with the currency's standard two-decimal
// fraction; arithmetic stays in decimal form elsewhere, this package is
// display only.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats decimal amounts for one currency/locale pair.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// New builds a Formatter for an ISO currency code and a BCP 47 locale.
func New(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders the amount with the locale's currency symbol, e.g.
// "RM 13.50". The digits come straight from the decimal value; only the
// symbol goes through the locale tables, so amounts are never routed
// through a float.
func (f *Formatter) Format(amount decimal.Decimal) string {
	symbol := f.printer.Sprint(currency.Symbol(f.unit))
	return symbol + " " + amount.StringFixed(2)
}

// FormatPlain renders the bare two-decimal amount without a symbol.
func FormatPlain(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
