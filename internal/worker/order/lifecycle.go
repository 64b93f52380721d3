package order

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kedai-labs/kopitiam/internal/config"
	"github.com/kedai-labs/kopitiam/internal/messaging"
	ordersvc "github.com/kedai-labs/kopitiam/internal/service/order"
	"github.com/kedai-labs/kopitiam/internal/worker"
	"github.com/kedai-labs/kopitiam/pkg/money"
)

var workerTracer = otel.Tracer("github.com/kedai-labs/kopitiam/worker/order")

// Module registers order-related worker handlers.
var Module = fx.Module("worker_order",
	fx.Provide(
		fx.Annotate(
			NewLifecycleHandler,
			fx.ResultTags(`group:"worker.handlers"`),
		),
	),
)

// NewLifecycleHandler builds the kitchen ticket handler: it consumes
// order lifecycle events and writes one log line per ticket so the
// kitchen terminal has an append-only feed of what happened at the
// register.
func NewLifecycleHandler(logger *zap.Logger, cfg config.Config) worker.HandlerRegistration {
	formatter, err := money.New(cfg.Pos.Currency, cfg.Pos.Locale)
	if err != nil {
		logger.Warn("falling back to plain amounts on tickets",
			zap.String("currency", cfg.Pos.Currency),
			zap.String("locale", cfg.Pos.Locale),
			zap.Error(err),
		)
	}

	handler := func(ctx context.Context, msg messaging.Message) error {
		ctx, span := workerTracer.Start(ctx, "worker.orders.ticket", trace.WithAttributes(
			attribute.String("messaging.topic", msg.Topic),
		))
		defer span.End()

		var event ordersvc.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("failed to decode order event", zap.Error(err))

			span.RecordError(err)
			span.SetStatus(codes.Error, "decode error")
			return err
		}
		total := money.FormatPlain(event.Total)
		if formatter != nil {
			total = formatter.Format(event.Total)
		}
		logger.Info("kitchen ticket",
			zap.String("event", event.Type),
			zap.Int64("order_id", event.OrderID),
			zap.Int("order_number", event.OrderNumber),
			zap.String("status", event.Status),
			zap.String("total", total),
		)

		return nil
	}

	return worker.HandlerRegistration{
		Topic:   cfg.Messaging.Kafka.Topic,
		Handler: handler,
	}
}
