package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/dejobratic/ledger/internal/ledger/metrics"
	"github.com/dejobratic/ledger/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type ObservableBookOrderHandler struct {
	handler BookOrderHandler
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewObservableBookOrderHandler(handler BookOrderHandler, logger *slog.Logger, metrics *metrics.Metrics) *ObservableBookOrderHandler {
	return &ObservableBookOrderHandler{
		handler: handler,
		logger:  logger,
		metrics: metrics,
	}
}

func (o *ObservableBookOrderHandler) Handle(ctx context.Context, cmd BookOrderCommand) (*BookOrderResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "BookOrderCommand.Handle")
	defer span.End()

	start := time.Now()
	var success bool
	defer func() {
		duration := time.Since(start).Seconds()
		o.metrics.RecordBookingDuration(ctx, duration)
		o.metrics.RecordOrderBooked(ctx, success)
	}()

	o.logger.InfoContext(ctx, "booking order",
		"customer_name", cmd.Name,
		"product", cmd.Product,
	)

	result, err := o.handler.Handle(ctx, cmd)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		o.logger.ErrorContext(ctx, "failed to book order",
			"error", err,
			"customer_name", cmd.Name,
		)
		return nil, err
	}

	telemetry.AddSpanAttributes(span,
		attribute.Int("order.id", result.Order.ID),
		attribute.String("order.product", result.Order.Product),
		attribute.String("order.customer_name", result.CustomerName),
	)

	o.logger.InfoContext(ctx, "order booked successfully",
		"order_id", result.Order.ID,
		"customer_name", result.CustomerName,
	)

	success = true
	telemetry.SetSpanSuccess(span)

	return result, nil
}
