package kafka

import (
	"time"

	"github.com/dejobratic/ledger/internal/ledger/ports"
	"github.com/google/uuid"
)

// EventTypeOrderBooked identifies the event published after every booking.
const EventTypeOrderBooked = "order.booked"

// DefaultOrdersTopic is used when no topic is configured.
const DefaultOrdersTopic = "ledger.order.events"

// OrderBookedEvent is the wire form of a booking notification. Downstream
// consumers (an email notifier, for one) subscribe to these.
type OrderBookedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	OrderID   int       `json:"order_id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	Product   string    `json:"product"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderBookedEvent builds an event from a booking notification with a
// fresh event id.
func NewOrderBookedEvent(n ports.BookingNotification) OrderBookedEvent {
	return OrderBookedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderBooked,
		OrderID:   n.OrderID,
		Name:      n.Name,
		Contact:   n.Contact,
		Address:   n.Address,
		Product:   n.Product,
		Timestamp: time.Now().UTC(),
	}
}
