package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher pushes order events to a Kafka topic for kitchen displays
// and notification consumers.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// NewPublisher dials the brokers. The connection itself is verified on
// the first produce.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers not configured")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &Publisher{client: client, topic: topic}, nil
}

type envelope struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// Publish marshals the event into a JSON envelope and produces it synchronously.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(envelope{
		ID:         uuid.NewString(),
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt(),
		Payload:    event,
	})
	if err != nil {
		return err
	}
	record := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.EventName()),
		Value:     payload,
		Timestamp: event.OccurredAt(),
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and releases the underlying client.
func (p *Publisher) Close(_ context.Context) error {
	p.client.Close()
	return nil
}
