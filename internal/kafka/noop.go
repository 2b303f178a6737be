package kafka

import (
	"context"
	"log/slog"

	"github.com/dejobratic/ledger/internal/ledger/ports"
)

// NoopNotifier logs bookings without sending them anywhere. Used when no
// brokers are configured.
type NoopNotifier struct{}

// NewNoopNotifier returns a new no-op notifier.
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) OrderBooked(_ context.Context, notification ports.BookingNotification) error {
	slog.Debug("event::order_booked",
		"order_id", notification.OrderID,
		"customer_name", notification.Name,
		"product", notification.Product,
	)
	return nil
}
