// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after the owning transaction commits, so consumers
// only ever see transitions that actually happened.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

const (
	eventTypeOrderConfirmed = "order.confirmed"
	eventTypeOrderCancelled = "order.cancelled"
)

// orderEventMessage is the JSON payload written to the order events topic.
type orderEventMessage struct {
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	CustomerEmail string    `json:"customer_email"`
	Status        string    `json:"status"`
	TotalAmount   *int64    `json:"total_amount,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// sarama synchronous producer.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewOrderEventPublisher creates a publisher connected to the given brokers.
// The producer is configured idempotent with acks from all in-sync replicas,
// so a reported success means the event is durable.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1 // required for idempotent producer

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka-order-events"),
	}, nil
}

// PublishOrderConfirmed announces a confirmed order, including its charged total.
func (p *OrderEventPublisher) PublishOrderConfirmed(ctx context.Context, aggregate *order.Order) error {
	total, err := aggregate.Total()
	if err != nil {
		return err
	}

	amount := total.Amount()
	return p.publish(ctx, orderEventMessage{
		EventType:     eventTypeOrderConfirmed,
		OrderID:       aggregate.ID().String(),
		CustomerEmail: aggregate.CustomerEmail().String(),
		Status:        aggregate.Status().String(),
		TotalAmount:   &amount,
		Currency:      string(total.Currency()),
		OccurredAt:    time.Now().UTC(),
	})
}

// PublishOrderCancelled announces a cancelled order.
func (p *OrderEventPublisher) PublishOrderCancelled(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, orderEventMessage{
		EventType:     eventTypeOrderCancelled,
		OrderID:       aggregate.ID().String(),
		CustomerEmail: aggregate.CustomerEmail().String(),
		Status:        aggregate.Status().String(),
		OccurredAt:    time.Now().UTC(),
	})
}

// Close shuts down the underlying producer.
func (p *OrderEventPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

func (p *OrderEventPublisher) publish(ctx context.Context, event orderEventMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.OrderID),
		Value:     sarama.ByteEncoder(eventData),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("failed to send message to kafka",
			"topic", p.topic,
			"key", event.OrderID,
			"error", err,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.Debug("message sent to kafka",
		"topic", p.topic,
		"key", event.OrderID,
		"partition", partition,
		"offset", offset,
	)

	return nil
}
