package messaging

import (
	"context"
	"encoding/json"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase/interfaces"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

const eventTypeHeader = "event-type"

// RecordProducer is the subset of *kgo.Client the publisher needs.
type RecordProducer interface {
	Produce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
}

// KafkaEventPublisher produces lifecycle events keyed by policy request id,
// so every event of one request lands on the same partition in order.
type KafkaEventPublisher struct {
	producer RecordProducer
	topic    string
	logger   *zap.Logger
}

var _ interfaces.IEventPublisher = (*KafkaEventPublisher)(nil)

func NewKafkaEventPublisher(producer RecordProducer, topic string, logger *zap.Logger) *KafkaEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaEventPublisher{producer: producer, topic: topic, logger: logger.Named("publisher")}
}

// Publish hands the record to the producer and returns. Delivery failures are
// logged from the produce callback.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event entities.PolicyEvent) {
	eventType := string(event.EventType)

	value, err := json.Marshal(event)
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(eventType, "error").Inc()
		p.logger.Error("[policy][publisher] failed to encode event",
			zap.String("policy_request_id", event.PolicyRequestID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.PolicyRequestID),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: eventTypeHeader, Value: []byte(eventType)},
		},
	}

	// the record outlives the caller's request context
	p.producer.Produce(context.WithoutCancel(ctx), record, func(r *kgo.Record, err error) {
		if err != nil {
			metrics.EventsPublishedTotal.WithLabelValues(eventType, "error").Inc()
			p.logger.Error("[policy][publisher] failed to publish event",
				zap.String("policy_request_id", event.PolicyRequestID),
				zap.String("event_type", eventType),
				zap.String("topic", r.Topic),
				zap.Error(err),
			)
			return
		}
		metrics.EventsPublishedTotal.WithLabelValues(eventType, "ok").Inc()
		p.logger.Debug("[policy][publisher] event published",
			zap.String("policy_request_id", event.PolicyRequestID),
			zap.String("event_type", eventType),
			zap.Int32("partition", r.Partition),
			zap.Int64("offset", r.Offset),
		)
	})
}
