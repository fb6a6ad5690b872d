package messaging

import (
	"context"

	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

// UnderwritingEventsHandler approves or rejects pending requests based on the
// underwriting decision.
type UnderwritingEventsHandler struct {
	lifecycle usecase.IPolicyRequestLifecycleUseCase
	logger    *zap.Logger
}

var _ TopicHandler = (*UnderwritingEventsHandler)(nil)

func NewUnderwritingEventsHandler(lifecycle usecase.IPolicyRequestLifecycleUseCase, logger *zap.Logger) *UnderwritingEventsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnderwritingEventsHandler{lifecycle: lifecycle, logger: logger.Named("underwriting")}
}

func (h *UnderwritingEventsHandler) Handle(ctx context.Context, record *kgo.Record) error {
	ev, err := decodeLifecycleEvent(record)
	if err != nil {
		metrics.InboundEventsTotal.WithLabelValues(record.Topic, ev.EventType, resultMalformed).Inc()
		h.logger.Warn("[policy][consumer] malformed underwriting event",
			zap.ByteString("key", record.Key),
			zap.Error(err),
		)
		return nil
	}

	switch ev.EventType {
	case UnderwritingApproved:
		_, err = h.lifecycle.Approve(ctx, ev.PolicyRequestID)
	case UnderwritingRejected:
		_, err = h.lifecycle.Reject(ctx, ev.PolicyRequestID, rejectionReason("underwriting rejected", ev.Reason))
	default:
		metrics.InboundEventsTotal.WithLabelValues(record.Topic, ev.EventType, resultIgnored).Inc()
		h.logger.Warn("[policy][consumer] unknown underwriting event type",
			zap.String("policy_request_id", ev.PolicyRequestID),
			zap.String("event_type", ev.EventType),
		)
		return nil
	}

	if err != nil {
		metrics.InboundEventsTotal.WithLabelValues(record.Topic, ev.EventType, resultFailed).Inc()
		return err
	}
	metrics.InboundEventsTotal.WithLabelValues(record.Topic, ev.EventType, resultProcessed).Inc()
	h.logger.Info("[policy][consumer] underwriting decision applied",
		zap.String("policy_request_id", ev.PolicyRequestID),
		zap.String("event_type", ev.EventType),
		zap.String("underwriter_id", ev.UnderwriterID),
	)
	return nil
}
