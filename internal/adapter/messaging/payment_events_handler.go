package messaging

import (
	"context"

	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

// PaymentEventsHandler reacts to the payment service. A confirmed payment only
// gets logged; approval waits for underwriting.
type PaymentEventsHandler struct {
	lifecycle usecase.IPolicyRequestLifecycleUseCase
	logger    *zap.Logger
}

var _ TopicHandler = (*PaymentEventsHandler)(nil)

func NewPaymentEventsHandler(lifecycle usecase.IPolicyRequestLifecycleUseCase, logger *zap.Logger) *PaymentEventsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentEventsHandler{lifecycle: lifecycle, logger: logger.Named("payments")}
}

func (h *PaymentEventsHandler) Handle(ctx context.Context, record *kgo.Record) error {
	ev, err := decodeLifecycleEvent(record)
	if err != nil {
		metrics.InboundEventsTotal.WithLabelValues(record.Topic, ev.EventType, resultMalformed).Inc()
		h.logger.Warn("[policy][consumer] malformed payment event",
			zap.ByteString("key", record.Key),
			zap.Error(err),
		)
		return nil
	}

	switch ev.EventType {
	case PaymentConfirmed:
		h.logger.Info("[policy][consumer] payment confirmed",
			zap.String("policy_request_id", ev.PolicyRequestID),
			zap.String("payment_id", ev.PaymentID),
		)
		metrics.InboundEventsTotal.WithLabelValues(record.Topic, ev.EventType, resultProcessed).Inc()
		return nil
	case PaymentRejected:
		_, err = h.lifecycle.Reject(ctx, ev.PolicyRequestID, rejectionReason("payment rejected", ev.Reason))
	default:
		metrics.InboundEventsTotal.WithLabelValues(record.Topic, ev.EventType, resultIgnored).Inc()
		h.logger.Warn("[policy][consumer] unknown payment event type",
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
	h.logger.Info("[policy][consumer] payment rejected, request rejected",
		zap.String("policy_request_id", ev.PolicyRequestID),
		zap.String("payment_id", ev.PaymentID),
	)
	return nil
}
