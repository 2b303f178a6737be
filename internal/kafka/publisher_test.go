package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/dejobratic/ledger/internal/ledger/ports"
)

func testNotification() ports.BookingNotification {
	return ports.BookingNotification{
		OrderID: 7,
		Name:    "Ali",
		Contact: "0300-1234567",
		Address: "12 Mall Road",
		Product: "Laptop",
	}
}

func TestPublisherOrderBooked(t *testing.T) {
	t.Run("publishes an order booked event keyed by order id", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != "ledger.order.events" {
				t.Errorf("expected topic ledger.order.events, got %s", msg.Topic)
			}

			key, err := msg.Key.Encode()
			if err != nil {
				t.Fatalf("failed to encode key: %v", err)
			}
			if string(key) != "7" {
				t.Errorf("expected key 7, got %s", key)
			}

			value, err := msg.Value.Encode()
			if err != nil {
				t.Fatalf("failed to encode value: %v", err)
			}

			var event OrderBookedEvent
			if err := json.Unmarshal(value, &event); err != nil {
				t.Fatalf("failed to unmarshal event: %v", err)
			}
			if event.EventType != EventTypeOrderBooked {
				t.Errorf("expected event type %s, got %s", EventTypeOrderBooked, event.EventType)
			}
			if event.OrderID != 7 || event.Product != "Laptop" || event.Name != "Ali" {
				t.Errorf("unexpected event payload: %+v", event)
			}
			if event.EventID == "" {
				t.Error("expected a generated event id")
			}
			if event.Timestamp.IsZero() {
				t.Error("expected a timestamp")
			}
			return nil
		})

		publisher := &Publisher{producer: producer, topic: DefaultOrdersTopic}

		if err := publisher.OrderBooked(context.Background(), testNotification()); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		if err := producer.Close(); err != nil {
			t.Fatalf("failed to close producer: %v", err)
		}
	})

	t.Run("returns an error when the broker rejects the message", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		publisher := &Publisher{producer: producer, topic: DefaultOrdersTopic}

		if err := publisher.OrderBooked(context.Background(), testNotification()); err == nil {
			t.Fatal("expected error, got nil")
		}

		if err := producer.Close(); err != nil {
			t.Fatalf("failed to close producer: %v", err)
		}
	})
}

func TestNewOrderBookedEvent(t *testing.T) {
	t.Run("assigns unique event ids", func(t *testing.T) {
		a := NewOrderBookedEvent(testNotification())
		b := NewOrderBookedEvent(testNotification())

		if a.EventID == b.EventID {
			t.Errorf("expected distinct event ids, both were %s", a.EventID)
		}
	})

	t.Run("copies all notification fields", func(t *testing.T) {
		event := NewOrderBookedEvent(testNotification())

		if event.OrderID != 7 || event.Name != "Ali" || event.Contact != "0300-1234567" ||
			event.Address != "12 Mall Road" || event.Product != "Laptop" {
			t.Errorf("unexpected event: %+v", event)
		}
	})
}
