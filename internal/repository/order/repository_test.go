package order

import (
	"database/sql"
	"testing"
	"time"

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
	// A pooled second connection would see a fresh empty database.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ddl := []string{
		`CREATE TABLE menu_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			temp TEXT,
			active INTEGER NOT NULL DEFAULT 1,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_number INTEGER NOT NULL,
			total TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE order_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_id INTEGER NOT NULL,
			item_id TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price TEXT NOT NULL
		)`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}

	return &Repository{writer: db, reader: db}
}

func createOrder(t *testing.T, repo *Repository, number int, createdAt time.Time, lines []*entity.OrderItem) *entity.Order {
	t.Helper()

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	order := &entity.Order{
		OrderNumber: number,
		Total:       total,
		Status:      entity.StatusActive,
		CreatedAt:   createdAt,
	}
	if err := repo.Create(t.Context(), order, lines); err != nil {
		t.Fatal(err)
	}
	return order
}

func TestCreatePersistsOrderWithItsLines(t *testing.T) {
	repo := newTestRepository(t)

	order := createOrder(t, repo, 7, time.Now().UTC(), []*entity.OrderItem{
		{ItemID: "a", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		{ItemID: "b", Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
	})
	if order.ID == 0 {
		t.Fatal("expected the new order id to be set")
	}

	orders, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	got := orders[0]
	if !got.Total.Equal(decimal.RequireFromString("13.50")) {
		t.Fatalf("expected total 13.50, got %s", got.Total)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected two item rows, got %d", len(got.Items))
	}
	for _, line := range got.Items {
		if line.OrderID != order.ID {
			t.Fatalf("line %q points at order %d, want %d", line.ItemID, line.OrderID, order.ID)
		}
	}
}

func TestReplaceItemsSwapsTheFullLineSet(t *testing.T) {
	repo := newTestRepository(t)

	order := createOrder(t, repo, 3, time.Now().UTC(), []*entity.OrderItem{
		{ItemID: "a", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		{ItemID: "b", Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
	})

	newTotal := decimal.RequireFromString("9.00")
	err := repo.ReplaceItems(t.Context(), order.ID, newTotal, []*entity.OrderItem{
		{ItemID: "c", Quantity: 3, UnitPrice: decimal.RequireFromString("3.00")},
	})
	if err != nil {
		t.Fatal(err)
	}

	orders, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	got := orders[0]
	if !got.Total.Equal(newTotal) {
		t.Fatalf("expected total 9.00, got %s", got.Total)
	}
	if len(got.Items) != 1 || got.Items[0].ItemID != "c" {
		t.Fatalf("expected the previous lines to be gone, got %+v", got.Items)
	}
	if got.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", got.Items[0].Quantity)
	}
}

func TestListActiveOrdersOldestFirstAndSkipsFinished(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

	line := func() []*entity.OrderItem {
		return []*entity.OrderItem{{ItemID: "a", Quantity: 1, UnitPrice: decimal.RequireFromString("2.00")}}
	}
	createOrder(t, repo, 3, base.Add(2*time.Hour), line())
	createOrder(t, repo, 1, base, line())
	createOrder(t, repo, 2, base.Add(time.Hour), line())
	cancelled := createOrder(t, repo, 4, base.Add(30*time.Minute), line())
	if err := repo.UpdateStatus(t.Context(), cancelled.ID, entity.StatusCancelled); err != nil {
		t.Fatal(err)
	}

	orders, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected three active orders, got %d", len(orders))
	}
	for i, want := range []int{1, 2, 3} {
		if orders[i].OrderNumber != want {
			t.Fatalf("position %d: expected order number %d, got %d", i, want, orders[i].OrderNumber)
		}
	}
}

func TestUpdateStatusOverwritesUnconditionally(t *testing.T) {
	repo := newTestRepository(t)

	order := createOrder(t, repo, 5, time.Now().UTC(), []*entity.OrderItem{
		{ItemID: "a", Quantity: 1, UnitPrice: decimal.RequireFromString("2.00")},
	})

	if err := repo.UpdateStatus(t.Context(), order.ID, entity.StatusServed); err != nil {
		t.Fatal(err)
	}
	// served is terminal for presentation, not a write guard.
	if err := repo.UpdateStatus(t.Context(), order.ID, entity.StatusCancelled); err != nil {
		t.Fatal(err)
	}

	orders, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].Status != entity.StatusCancelled {
		t.Fatalf("expected the order to end cancelled, got %+v", orders)
	}
}

func TestUpdateStatusUnknownIDIsANoOp(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.UpdateStatus(t.Context(), 99999, entity.StatusServed); err != nil {
		t.Fatalf("zero-row update must not error, got %v", err)
	}
	orders, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestListActiveResolvesMenuJoin(t *testing.T) {
	repo := newTestRepository(t)

	kopi := &entity.MenuItem{ID: "kopi-o", Name: "Kopi O", Price: decimal.RequireFromString("2.00"), Category: "Coffee", Active: true}
	if _, err := repo.writer.NewInsert().Model(kopi).Exec(t.Context()); err != nil {
		t.Fatal(err)
	}

	createOrder(t, repo, 9, time.Now().UTC(), []*entity.OrderItem{
		{ItemID: "kopi-o", Quantity: 1, UnitPrice: decimal.RequireFromString("2.00")},
		{ItemID: "gone", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
	})

	orders, err := repo.ListActive(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || len(orders[0].Items) != 2 {
		t.Fatalf("unexpected result %+v", orders)
	}
	for _, line := range orders[0].Items {
		switch line.ItemID {
		case "kopi-o":
			if line.Item == nil || line.Item.Name != "Kopi O" {
				t.Fatalf("expected the catalog join for %q, got %+v", line.ItemID, line.Item)
			}
		case "gone":
			if line.Item != nil {
				t.Fatalf("expected no catalog row for %q, got %+v", line.ItemID, line.Item)
			}
		}
	}
}
