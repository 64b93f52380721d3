package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kedai-labs/kopitiam/internal/dto"
)

func temp(s string) *string { return &s }

func TestSectionTitle(t *testing.T) {
	if got := SectionTitle("Coffee", temp("iced")); got != "Coffee • iced" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := SectionTitle("Food", nil); got != "Food" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := SectionTitle("Food", temp("")); got != "Food" {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestMenuSectionsGroupsByCategoryAndTemp(t *testing.T) {
	items := []dto.MenuItemResponse{
		{ID: "1", Name: "Kopi O", Category: "Coffee", Temp: temp("hot")},
		{ID: "2", Name: "Kopi Peng", Category: "Coffee", Temp: temp("iced")},
		{ID: "3", Name: "Kopi C", Category: "Coffee", Temp: temp("hot")},
		{ID: "4", Name: "Kaya Toast", Category: "Food"},
	}

	sections := MenuSections(items)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Title != "Coffee • hot" || len(sections[0].Items) != 2 {
		t.Fatalf("unexpected first section: %+v", sections[0])
	}
	if sections[1].Title != "Coffee • iced" {
		t.Fatalf("unexpected second section: %+v", sections[1])
	}
	if sections[2].Title != "Food" {
		t.Fatalf("unexpected third section: %+v", sections[2])
	}
	// Catalog order preserved within a section.
	if sections[0].Items[0].Name != "Kopi O" || sections[0].Items[1].Name != "Kopi C" {
		t.Fatalf("section items out of order: %+v", sections[0].Items)
	}
}

func order(id int64, status string, createdAt time.Time) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        id,
		Status:    status,
		Total:     decimal.Zero,
		CreatedAt: createdAt,
	}
}

func TestOrdersByDayFiltersAndGroups(t *testing.T) {
	day1 := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	orders := []dto.OrderResponse{
		order(1, "served", day1),
		order(2, "active", day2), // still in the queue; not history
		order(3, "cancelled", day2),
		order(4, "served", day2.Add(2*time.Hour)),
	}

	groups := OrdersByDay(orders)
	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if groups[0].Date != "2026-08-29" {
		t.Fatalf("expected newest day first, got %s", groups[0].Date)
	}
	if len(groups[0].Orders) != 2 {
		t.Fatalf("expected 2 orders on 2026-08-29, got %d", len(groups[0].Orders))
	}
	// Newest order first within the day.
	if groups[0].Orders[0].ID != 4 || groups[0].Orders[1].ID != 3 {
		t.Fatalf("orders out of order: %+v", groups[0].Orders)
	}
	if groups[1].Date != "2026-08-28" || len(groups[1].Orders) != 1 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestOrdersByDayEmpty(t *testing.T) {
	groups := OrdersByDay([]dto.OrderResponse{order(1, "active", time.Now())})
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}
