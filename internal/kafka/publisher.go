package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/dejobratic/ledger/internal/ledger/ports"
)

// Publisher sends booking events to Kafka. Delivery is bounded: a few
// producer retries, then the error is reported to the caller, who logs and
// moves on. The booking itself is already durable by the time this runs.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a synchronous producer to the given brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	if topic == "" {
		topic = DefaultOrdersTopic
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// OrderBooked publishes an order.booked event keyed by order id, so events
// for the same order land on the same partition.
func (p *Publisher) OrderBooked(_ context.Context, n ports.BookingNotification) error {
	event := NewOrderBookedEvent(n)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order booked event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(n.OrderID)),
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish order booked event: %w", err)
	}

	return nil
}

// Close releases the underlying producer.
func (p *Publisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
