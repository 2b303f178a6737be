package ports

import "context"

// BookingNotification carries the details handed to the notifier after a
// booking has been durably saved.
type BookingNotification struct {
	OrderID int
	Name    string
	Contact string
	Address string
	Product string
}

// Notifier receives best-effort booking notifications. Implementations are
// expected to be bounded in how long they try; the caller never fails a
// booking over a notification error.
type Notifier interface {
	OrderBooked(ctx context.Context, n BookingNotification) error
}
