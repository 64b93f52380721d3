package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kedai-labs/kopitiam/internal/config"
	"github.com/kedai-labs/kopitiam/internal/dto"
	"github.com/kedai-labs/kopitiam/internal/entity"
	"github.com/kedai-labs/kopitiam/internal/messaging"
	repo "github.com/kedai-labs/kopitiam/internal/repository/order"
	"github.com/kedai-labs/kopitiam/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/kedai-labs/kopitiam/service/order")

var ordersPlaced, _ = otel.Meter("github.com/kedai-labs/kopitiam/service/order").
	Int64Counter("pos_orders_placed_total",
		metric.WithDescription("Orders placed at the register."))

// Event types published on the order lifecycle topic.
const (
	EventCreated   = "order.created"
	EventEdited    = "order.edited"
	EventServed    = "order.served"
	EventCancelled = "order.cancelled"
)

// Service is the order store gateway: the only component that mutates
// persisted order state. Totals are always recomputed here from the
// submitted lines; client totals are advisory.
type Service struct {
	repo      *repo.Repository
	logger    *zap.Logger
	publisher messaging.Client
	messaging messagingConfig
}

type messagingConfig struct {
	enabled bool
	topic   string
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:      p.Repository,
		logger:    p.Logger,
		publisher: p.Publisher,
		messaging: messagingConfig{
			enabled: p.Config.Messaging.Enabled,
			topic:   p.Config.Messaging.Kafka.Topic,
		},
	}
}

// ComputeTotal is the authoritative total: Σ unit_price × quantity over
// the submitted lines, in exact decimal arithmetic. The cart computes its
// display total the same way, so the two never diverge.
func ComputeTotal(items []dto.OrderItemPayload) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ValidateItems rejects a malformed line set: empty, missing item ids, or
// non-positive quantities.
func ValidateItems(items []dto.OrderItemPayload) error {
	if len(items) == 0 {
		return errorbank.BadRequest("items must not be empty")
	}
	for _, item := range items {
		if item.ItemID == "" {
			return errorbank.BadRequest("item_id is required")
		}
		if item.Quantity <= 0 {
			return errorbank.BadRequest("quantity must be positive")
		}
	}
	return nil
}

// ListActive returns active orders oldest-first with display names
// resolved against the catalog. A missing catalog row falls back to the
// raw item id.
func (s *Service) ListActive(ctx context.Context) ([]dto.OrderResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.ListActive")
	defer span.End()

	orders, err := s.repo.ListActive(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal(err.Error(), errorbank.WithCause(err))
	}
	return toDTOs(orders), nil
}

// ListAll returns every order, any status. The gateway does no history
// filtering; the presentation layer decides what a "past" order is.
func (s *Service) ListAll(ctx context.Context) ([]dto.OrderResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.ListAll")
	defer span.End()

	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal(err.Error(), errorbank.WithCause(err))
	}
	return toDTOs(orders), nil
}

// Create validates the payload, computes the total server-side, and
// persists the order with its lines atomically. Submitted unit prices are
// stored as-is: they are the price snapshot taken at the register, and
// later catalog changes must not move this order's total.
func (s *Service) Create(ctx context.Context, req dto.CreateOrderRequest) (int64, error) {
	if req.OrderNumber <= 0 {
		return 0, errorbank.BadRequest("order_number is required")
	}
	if err := ValidateItems(req.Items); err != nil {
		return 0, err
	}

	ctx, span := serviceTracer.Start(ctx, "OrderService.Create", trace.WithAttributes(
		attribute.Int("order.number", req.OrderNumber),
		attribute.Int("order.lines", len(req.Items)),
	))
	defer span.End()

	order := &entity.Order{
		OrderNumber: req.OrderNumber,
		Total:       ComputeTotal(req.Items),
		Status:      entity.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	items := toEntities(req.Items)

	if err := s.repo.Create(ctx, order, items); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal(err.Error(), errorbank.WithCause(err))
	}

	ordersPlaced.Add(ctx, 1)
	s.logger.Info("order created",
		zap.Int64("id", order.ID),
		zap.Int("order_number", order.OrderNumber),
		zap.String("total", order.Total.StringFixed(2)),
	)
	s.publish(ctx, EventCreated, order)
	return order.ID, nil
}

// Edit replaces an order's full line set and recomputes its total, in one
// transaction. The previous set's size is irrelevant; afterwards the
// order has exactly the submitted lines.
func (s *Service) Edit(ctx context.Context, orderID int64, items []dto.OrderItemPayload) error {
	if orderID <= 0 {
		return errorbank.BadRequest("invalid order id")
	}
	if err := ValidateItems(items); err != nil {
		return err
	}

	ctx, span := serviceTracer.Start(ctx, "OrderService.Edit", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.Int("order.lines", len(items)),
	))
	defer span.End()

	total := ComputeTotal(items)
	if err := s.repo.ReplaceItems(ctx, orderID, total, toEntities(items)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal(err.Error(), errorbank.WithCause(err))
	}

	s.logger.Info("order edited",
		zap.Int64("id", orderID),
		zap.Int("lines", len(items)),
		zap.String("total", total.StringFixed(2)),
	)
	s.publish(ctx, EventEdited, &entity.Order{ID: orderID, Total: total, Status: entity.StatusActive})
	return nil
}

// Serve marks an order served.
func (s *Service) Serve(ctx context.Context, orderID int64) error {
	return s.setStatus(ctx, orderID, entity.StatusServed, EventServed)
}

// Cancel marks an order cancelled.
func (s *Service) Cancel(ctx context.Context, orderID int64) error {
	return s.setStatus(ctx, orderID, entity.StatusCancelled, EventCancelled)
}

// setStatus overwrites the status unconditionally. serve-after-cancel and
// cancel-after-serve are accepted; there is no transition guard until
// product intent says otherwise.
func (s *Service) setStatus(ctx context.Context, orderID int64, status entity.OrderStatus, event string) error {
	if orderID <= 0 {
		return errorbank.BadRequest("invalid order id")
	}

	ctx, span := serviceTracer.Start(ctx, "OrderService.SetStatus", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.String("order.status", string(status)),
	))
	defer span.End()

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal(err.Error(), errorbank.WithCause(err))
	}

	s.logger.Info("order status updated",
		zap.Int64("id", orderID),
		zap.String("status", string(status)),
	)
	s.publish(ctx, event, &entity.Order{ID: orderID, Status: status})
	return nil
}

func toEntities(items []dto.OrderItemPayload) []*entity.OrderItem {
	rows := make([]*entity.OrderItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, &entity.OrderItem{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return rows
}

func toDTOs(orders []entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToDTO(o))
	}
	return out
}

// ToDTO maps an order row to its wire shape, resolving line display names
// from the read-time catalog join.
func ToDTO(o entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, line := range o.Items {
		name := line.ItemID
		if line.Item != nil && line.Item.Name != "" {
			name = line.Item.Name
		}
		items = append(items, dto.OrderItemResponse{
			ID:        line.ID,
			ItemID:    line.ItemID,
			Name:      name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Total:       o.Total,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}

// OrderEvent is published on every order lifecycle change.
type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int64           `json:"order_id"`
	OrderNumber int             `json:"order_number,omitempty"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	At          time.Time       `json:"at"`
}

func (s *Service) publish(ctx context.Context, event string, order *entity.Order) {
	if !s.messaging.enabled || s.publisher == nil {
		return
	}
	evt := OrderEvent{
		Type:        event,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
		Status:      string(order.Status),
		At:          time.Now().UTC(),
	}
	key := fmt.Sprintf("order-%d", order.ID)
	if err := messaging.PublishJSON(ctx, s.publisher, key, evt); err != nil {
		s.logger.Error("publish order event", zap.String("type", event), zap.Error(err))
	}
}
