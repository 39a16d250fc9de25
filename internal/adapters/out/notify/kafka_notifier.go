package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// KafkaNotifier publishes order events to Kafka for payment/fulfillment
// consumers. Publish failures are logged and returned; the composition root
// decides whether they fail the business operation.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaNotifier creates a Kafka-backed notifier publishing to the given topic.
// The producer waits for all in-sync replicas and publishes idempotently, so
// a retried send cannot duplicate an event.
func NewKafkaNotifier(brokers []string, topic string, logger *slog.Logger) (*KafkaNotifier, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_notifier"),
	}, nil
}

// OrderCreated publishes an order-created event keyed by order id.
func (n *KafkaNotifier) OrderCreated(ctx context.Context, aggregate *order.Order) error {
	event := NewOrderCreatedEvent(aggregate.ID().String(), aggregate.UnreturnedProductIDs())
	return n.publish(ctx, aggregate.ID().String(), event)
}

// ItemReturned publishes an item-returned event keyed by order id.
func (n *KafkaNotifier) ItemReturned(ctx context.Context, orderID kernel.UUID, productID int64) error {
	event := NewItemReturnedEvent(orderID.String(), productID)
	return n.publish(ctx, orderID.String(), event)
}

func (n *KafkaNotifier) publish(ctx context.Context, key string, event any) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     n.topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(eventData),
		Timestamp: time.Now(),
	}

	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to send message to kafka",
			"topic", n.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	n.logger.DebugContext(ctx, "message sent to kafka",
		"topic", n.topic,
		"key", key,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close closes the underlying producer.
func (n *KafkaNotifier) Close() error {
	if err := n.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
