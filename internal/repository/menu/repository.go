package menu

import (
	"context"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/kedai-labs/kopitiam/internal/database"
	"github.com/kedai-labs/kopitiam/internal/entity"
)

var repoTracer = otel.Tracer("github.com/kedai-labs/kopitiam/repository/menu")

// Repository reads the menu catalog. The catalog is edited out-of-band,
// so this repository is read-only and uses the reader connection.
type Repository struct {
	reader *bun.DB
}

// NewRepository wires a repository backed by the configured connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{reader: conns.Reader}
}

// ListActive returns every active catalog item in display order. An empty
// catalog is a valid result, not an error.
func (r *Repository) ListActive(ctx context.Context) ([]entity.MenuItem, error) {
	ctx, span := repoTracer.Start(ctx, "MenuRepository.ListActive")
	defer span.End()

	items := make([]entity.MenuItem, 0)
	err := r.reader.NewSelect().
		Model(&items).
		Where("active = ?", true).
		Order("sort_order ASC").
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return items, nil
}
