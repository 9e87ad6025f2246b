// Package events publishes commerce reconciliation events to Kafka.
// Publishing is strictly fire-and-forget: a broker outage must never
// fail a vendor save or a page render, so errors are logged and dropped.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/anna-pye/myeventlane-v2-sub000/pkg/logger"
)

// Topics for commerce reconciliation events
const (
	TopicRSVPProductCreated = "myeventlane.rsvp-product.created"
	TopicTicketTypesSynced  = "myeventlane.ticket-types.synced"
	TopicVariationRetired   = "myeventlane.variation.retired"
)

// Publisher emits domain events after reconciliation operations.
type Publisher interface {
	// Publish emits one event keyed by event ID
	Publish(ctx context.Context, topic, eventID string, payload any)
	// Close flushes and releases the underlying client
	Close()
}

// KafkaPublisher implements Publisher on a franz-go client.
type KafkaPublisher struct {
	client *kgo.Client
	log    *logger.Logger
}

// NewKafkaPublisher creates a publisher connected to the given brokers.
func NewKafkaPublisher(brokers []string, clientID string, log *logger.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ClientID(clientID),
		kgo.ProducerBatchMaxBytes(1<<20),
		kgo.RecordRetries(3),
	)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{client: client, log: log}, nil
}

type envelope struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Publish emits one event keyed by event ID. Failures are logged, not
// returned; the reconciliation result stands regardless.
func (p *KafkaPublisher) Publish(ctx context.Context, topic, eventID string, payload any) {
	body, err := json.Marshal(envelope{
		EventID:    eventID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		p.log.Warn("failed to marshal domain event",
			zap.String("topic", topic), zap.String("event_id", eventID), zap.Error(err))
		return
	}

	record := &kgo.Record{Topic: topic, Key: []byte(eventID), Value: body}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.log.Warn("failed to publish domain event",
				zap.String("topic", topic), zap.String("event_id", eventID), zap.Error(err))
		}
	})
}

// Close flushes pending records and releases the client.
func (p *KafkaPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}

// NoopPublisher drops all events. Used when Kafka is disabled and in tests.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, topic, eventID string, payload any) {}

func (NoopPublisher) Close() {}
