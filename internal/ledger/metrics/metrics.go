package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	ordersBookedTotal metric.Int64Counter
	bookingDuration   metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.ordersBookedTotal, err = meter.Int64Counter(
		"orders_booked_total",
		metric.WithDescription("Total number of orders booked"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create orders_booked_total counter: %w", err)
	}

	m.bookingDuration, err = meter.Float64Histogram(
		"order_booking_duration_seconds",
		metric.WithDescription("Duration of order booking operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create order_booking_duration histogram: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordOrderBooked(ctx context.Context, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.ordersBookedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
}

func (m *Metrics) RecordBookingDuration(ctx context.Context, durationSeconds float64) {
	m.bookingDuration.Record(ctx, durationSeconds)
}
