package messaging

import (
	"context"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogEventPublisher writes lifecycle events to the log. It stands in for the
// Kafka publisher when KAFKA_ENABLED is false.
type LogEventPublisher struct {
	logger *zap.Logger
}

var _ interfaces.IEventPublisher = (*LogEventPublisher)(nil)

func NewLogEventPublisher(logger *zap.Logger) *LogEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogEventPublisher{logger: logger.Named("publisher")}
}

func (p *LogEventPublisher) Publish(_ context.Context, event entities.PolicyEvent) {
	metrics.EventsPublishedTotal.WithLabelValues(string(event.EventType), "logged").Inc()
	p.logger.Info("[policy][publisher] event",
		zap.String("policy_request_id", event.PolicyRequestID),
		zap.String("event_type", string(event.EventType)),
		zap.String("status", string(event.Status)),
		zap.String("previous_status", string(event.PreviousStatus)),
		zap.String("reason", event.Reason),
	)
}
