package messaging

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

// TopicHandler handles records of one topic. A returned error is logged by
// the consumer; the record is committed either way.
type TopicHandler interface {
	Handle(ctx context.Context, record *kgo.Record) error
}

// Router dispatches records to the handler registered for their topic.
type Router struct {
	handlers map[string]TopicHandler
	fallback TopicHandler
	logger   *zap.Logger
}

// NewRouter creates a router. fallback may be nil.
func NewRouter(logger *zap.Logger, fallback TopicHandler) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		handlers: make(map[string]TopicHandler),
		fallback: fallback,
		logger:   logger.Named("router"),
	}
}

func (r *Router) Register(topic string, handler TopicHandler) {
	r.handlers[topic] = handler
}

// Topics lists the registered topics.
func (r *Router) Topics() []string {
	topics := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		topics = append(topics, t)
	}
	return topics
}

func (r *Router) Handle(ctx context.Context, record *kgo.Record) error {
	handler, ok := r.handlers[record.Topic]
	if !ok {
		if r.fallback != nil {
			return r.fallback.Handle(ctx, record)
		}
		r.logger.Warn("[policy][consumer] no handler for topic, skipping record",
			zap.String("topic", record.Topic),
			zap.ByteString("key", record.Key),
		)
		return nil
	}
	return handler.Handle(ctx, record)
}
