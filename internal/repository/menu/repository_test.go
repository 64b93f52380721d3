package menu

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/kedai-labs/kopitiam/internal/entity"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ddl := `CREATE TABLE menu_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		temp TEXT,
		active INTEGER NOT NULL DEFAULT 1,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`
	if _, err := db.Exec(ddl); err != nil {
		t.Fatal(err)
	}

	items := []entity.MenuItem{
		{ID: "b", Name: "Kopi C", Price: decimal.RequireFromString("2.50"), Category: "Coffee", Active: true, SortOrder: 20},
		{ID: "a", Name: "Kopi O", Price: decimal.RequireFromString("2.00"), Category: "Coffee", Active: true, SortOrder: 10},
		{ID: "c", Name: "Retired Drink", Price: decimal.RequireFromString("9.00"), Category: "Coffee", Active: false, SortOrder: 5},
	}
	if _, err := db.NewInsert().Model(&items).Exec(t.Context()); err != nil {
		t.Fatal(err)
	}

	return &Repository{reader: db}
}

func TestListActiveFiltersAndSortsCatalog(t *testing.T) {
	repo := newTestRepository(t)

	items, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two active items, got %d", len(items))
	}
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("expected display order a,b; got %s,%s", items[0].ID, items[1].ID)
	}
	for _, item := range items {
		if !item.Active {
			t.Fatalf("inactive item %q leaked into the listing", item.ID)
		}
	}
}

func TestListActiveIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)

	first, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated reads disagree: %d vs %d items", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("repeated reads disagree at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}
