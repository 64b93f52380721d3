// Package board keeps a cached snapshot of the counter display: the
// active queue plus the free waiting numbers. The snapshot is refreshed
// by unconditional polling on a fixed interval, so it may lag the store
// by up to one interval; that staleness is the accepted concurrency model
// of the whole system.
package board

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kedai-labs/kopitiam/internal/cache"
	"github.com/kedai-labs/kopitiam/internal/config"
	"github.com/kedai-labs/kopitiam/internal/dto"
	ordersvc "github.com/kedai-labs/kopitiam/internal/service/order"
	"github.com/kedai-labs/kopitiam/internal/waitnum"
	"github.com/kedai-labs/kopitiam/pkg/errorbank"
)

const snapshotKey = "board:active"

// Poller refreshes the board snapshot for as long as the app runs.
type Poller struct {
	orders *ordersvc.Service
	cache  cache.Store
	cfg    config.Pos
	logger *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// Params defines dependencies for constructing the Poller.
type Params struct {
	fx.In

	Orders *ordersvc.Service
	Cache  cache.Store
	Config config.Config
	Logger *zap.Logger
}

// NewPoller constructs the board Poller.
func NewPoller(p Params) *Poller {
	return &Poller{
		orders: p.Orders,
		cache:  p.Cache,
		cfg:    p.Config.Pos,
		logger: p.Logger,
	}
}

// Module wires the poller into the Fx lifecycle; the refresh loop stops
// with the app.
var Module = fx.Options(
	fx.Provide(NewPoller),
	fx.Invoke(func(lc fx.Lifecycle, p *Poller) {
		lc.Append(fx.Hook{
			OnStart: p.start,
			OnStop:  p.stop,
		})
	}),
)

func (p *Poller) start(context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if err := p.refresh(runCtx); err != nil {
					p.logger.Warn("board refresh failed", zap.Error(err))
				}
			}
		}
	}()

	p.logger.Info("board poller started", zap.Duration("interval", p.cfg.PollInterval))
	return nil
}

func (p *Poller) stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		p.logger.Info("board poller stopped")
		return nil
	}
}

func (p *Poller) refresh(ctx context.Context) error {
	snapshot, err := p.build(ctx)
	if err != nil {
		return err
	}
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	// Keep the snapshot around long enough to survive a couple of missed
	// refreshes before readers fall back to a live query.
	return p.cache.Set(ctx, snapshotKey, bytes, 3*p.cfg.PollInterval)
}

func (p *Poller) build(ctx context.Context) (dto.BoardSnapshot, error) {
	orders, err := p.orders.ListActive(ctx)
	if err != nil {
		return dto.BoardSnapshot{}, err
	}
	taken := make([]int, 0, len(orders))
	for _, o := range orders {
		taken = append(taken, o.OrderNumber)
	}
	return dto.BoardSnapshot{
		Orders:           orders,
		AvailableNumbers: waitnum.Available(p.cfg.WaitingNumbers, taken),
		RefreshedAt:      time.Now().UTC(),
	}, nil
}

// Snapshot returns the cached board state, building it live on a cache
// miss.
func (p *Poller) Snapshot(ctx context.Context) (dto.BoardSnapshot, error) {
	if bytes, err := p.cache.Get(ctx, snapshotKey); err == nil {
		var snapshot dto.BoardSnapshot
		uerr := json.Unmarshal(bytes, &snapshot)
		if uerr == nil {
			return snapshot, nil
		}
		p.logger.Warn("board snapshot decode failed; rebuilding", zap.Error(uerr))
	}
	snapshot, err := p.build(ctx)
	if err != nil {
		return dto.BoardSnapshot{}, errorbank.From(err)
	}
	return snapshot, nil
}
