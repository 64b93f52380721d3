package menu

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kedai-labs/kopitiam/internal/cache"
	"github.com/kedai-labs/kopitiam/internal/config"
	"github.com/kedai-labs/kopitiam/internal/dto"
	"github.com/kedai-labs/kopitiam/internal/entity"
	repo "github.com/kedai-labs/kopitiam/internal/repository/menu"
	"github.com/kedai-labs/kopitiam/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/kedai-labs/kopitiam/service/menu")

const cacheKey = "menu:active"

// Service serves the sellable catalog. The catalog is edited out-of-band,
// so reads are cached with a short TTL; there is no invalidation hook.
type Service struct {
	repo     *repo.Repository
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:     p.Repository,
		cache:    p.Cache,
		cacheTTL: p.Config.Cache.DefaultTTL,
		logger:   p.Logger,
	}
}

// ListActive returns the active catalog in display order. Reads are
// idempotent: repeated calls with no catalog writes return the same
// sequence. An empty catalog renders as an empty menu, not an error.
func (s *Service) ListActive(ctx context.Context) ([]dto.MenuItemResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "MenuService.ListActive")
	defer span.End()

	if items, err := s.getFromCache(ctx); err == nil {
		return items, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("menu cache read failed", zap.Error(err))
	}

	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal(err.Error(), errorbank.WithCause(err))
	}

	items := make([]dto.MenuItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDTO(row))
	}

	if err := s.storeInCache(ctx, items); err != nil {
		s.logger.Warn("menu cache write failed", zap.Error(err))
	}

	return items, nil
}

func toDTO(item entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		Category:  item.Category,
		Temp:      item.Temp,
		Active:    item.Active,
		SortOrder: item.SortOrder,
	}
}

func (s *Service) getFromCache(ctx context.Context) ([]dto.MenuItemResponse, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	var items []dto.MenuItemResponse
	if err := json.Unmarshal(bytes, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) storeInCache(ctx context.Context, items []dto.MenuItemResponse) error {
	if s.cache == nil {
		return nil
	}
	bytes, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, cacheKey, bytes, s.cacheTTL)
}
