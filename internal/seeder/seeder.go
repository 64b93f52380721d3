package seeder

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kedai-labs/kopitiam/internal/database"
	"github.com/kedai-labs/kopitiam/internal/entity"
)

// Module provides the seeder to Fx.
var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

func temp(s string) *string { return &s }

// Menu seeds a starter kopitiam catalog if the items are missing.
func (s *Seeder) Menu(ctx context.Context) error {
	samples := []entity.MenuItem{
		{Name: "Kopi O", Price: decimal.RequireFromString("2.00"), Category: "Coffee", Temp: temp("hot"), Active: true, SortOrder: 10},
		{Name: "Kopi C", Price: decimal.RequireFromString("2.50"), Category: "Coffee", Temp: temp("hot"), Active: true, SortOrder: 20},
		{Name: "Kopi Peng", Price: decimal.RequireFromString("3.00"), Category: "Coffee", Temp: temp("iced"), Active: true, SortOrder: 30},
		{Name: "Teh Tarik", Price: decimal.RequireFromString("2.50"), Category: "Tea", Temp: temp("hot"), Active: true, SortOrder: 40},
		{Name: "Teh O Ais", Price: decimal.RequireFromString("2.80"), Category: "Tea", Temp: temp("iced"), Active: true, SortOrder: 50},
		{Name: "Milo Dinosaur", Price: decimal.RequireFromString("4.50"), Category: "Others", Temp: temp("iced"), Active: true, SortOrder: 60},
		{Name: "Kaya Toast", Price: decimal.RequireFromString("3.50"), Category: "Food", Active: true, SortOrder: 70},
		{Name: "Half-Boiled Eggs", Price: decimal.RequireFromString("3.00"), Category: "Food", Active: true, SortOrder: 80},
	}

	for _, sample := range samples {
		item := sample
		_, err := s.db.NewInsert().Model(&item).
			On("CONFLICT (name) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded menu items", zap.Int("count", len(samples)))
	}
	return nil
}
