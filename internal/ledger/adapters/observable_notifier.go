package adapters

import (
	"context"
	"strconv"
	"time"

	"github.com/dejobratic/ledger/internal/kafka"
	"github.com/dejobratic/ledger/internal/ledger/ports"
	"github.com/dejobratic/ledger/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ObservableNotifier wraps a notifier with spans and publish metrics.
type ObservableNotifier struct {
	notifier ports.Notifier
	metrics  *kafka.Metrics
}

func NewObservableNotifier(notifier ports.Notifier, metrics *kafka.Metrics) *ObservableNotifier {
	return &ObservableNotifier{
		notifier: notifier,
		metrics:  metrics,
	}
}

func (n *ObservableNotifier) OrderBooked(ctx context.Context, notification ports.BookingNotification) error {
	ctx, span := telemetry.StartSpan(ctx, "Notifier.OrderBooked")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("order.id", strconv.Itoa(notification.OrderID)),
		attribute.String("event.type", kafka.EventTypeOrderBooked),
	)

	start := time.Now()
	err := n.notifier.OrderBooked(ctx, notification)
	duration := time.Since(start).Seconds()

	n.metrics.RecordPublish(ctx, kafka.EventTypeOrderBooked, duration, err == nil)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}
