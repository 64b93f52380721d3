package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCarriesTwoDecimalFraction(t *testing.T) {
	f, err := New("MYR", "ms-MY")
	if err != nil {
		t.Fatal(err)
	}
	got := f.Format(decimal.RequireFromString("13.5"))
	if !strings.Contains(got, "13.50") {
		t.Fatalf("expected two-decimal amount in %q", got)
	}
}

func TestFormatKeepsDecimalExactness(t *testing.T) {
	f, err := New("MYR", "ms-MY")
	if err != nil {
		t.Fatal(err)
	}
	// 1234567.895 has no exact float64 representation; a float path
	// would round it down to .89.
	got := f.Format(decimal.RequireFromString("1234567.895"))
	if !strings.HasSuffix(got, "1234567.90") {
		t.Fatalf("expected exact half-up rounding, got %q", got)
	}
}

func TestNewRejectsBadInputs(t *testing.T) {
	if _, err := New("NOPE", "ms-MY"); err == nil {
		t.Fatal("expected error for unknown currency")
	}
	if _, err := New("MYR", "not a locale"); err == nil {
		t.Fatal("expected error for bad locale")
	}
}

func TestFormatPlain(t *testing.T) {
	if got := FormatPlain(decimal.RequireFromString("3.5")); got != "3.50" {
		t.Fatalf("expected 3.50, got %s", got)
	}
	if got := FormatPlain(decimal.RequireFromString("2")); got != "2.00" {
		t.Fatalf("expected 2.00, got %s", got)
	}
}
