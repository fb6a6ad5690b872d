package messaging

import (
	"context"
	"errors"
	"sort"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

// FetchClient is the subset of *kgo.Client the consumer loop needs.
type FetchClient interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
	Close()
}

// LifecycleConsumer polls the payment and underwriting topics and hands every
// record to the router. Records are committed after handling whether or not
// the handler failed, so a poison record never blocks its partition.
type LifecycleConsumer struct {
	client FetchClient
	router *Router
	logger *zap.Logger
}

func NewLifecycleConsumer(client FetchClient, router *Router, logger *zap.Logger) *LifecycleConsumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleConsumer{client: client, router: router, logger: logger.Named("consumer")}
}

func (c *LifecycleConsumer) Name() string { return "lifecycle-consumer" }

// Run blocks until ctx is cancelled or the client is closed.
func (c *LifecycleConsumer) Run(ctx context.Context) error {
	topics := c.router.Topics()
	sort.Strings(topics)
	c.logger.Info("[policy][consumer] started", zap.Strings("topics", topics))

	for {
		if ctx.Err() != nil {
			return nil
		}

		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.logger.Error("[policy][consumer] fetch error",
				zap.String("topic", topic),
				zap.Int32("partition", partition),
				zap.Error(err),
			)
		})

		var handled []*kgo.Record
		fetches.EachRecord(func(record *kgo.Record) {
			c.handle(ctx, record)
			handled = append(handled, record)
		})
		if len(handled) == 0 {
			continue
		}

		if err := c.client.CommitRecords(context.WithoutCancel(ctx), handled...); err != nil {
			c.logger.Error("[policy][consumer] commit failed",
				zap.Int("records", len(handled)),
				zap.Error(err),
			)
		}
	}
}

func (c *LifecycleConsumer) handle(ctx context.Context, record *kgo.Record) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("[policy][consumer] handler panicked",
				zap.String("topic", record.Topic),
				zap.ByteString("key", record.Key),
				zap.Any("panic", r),
			)
		}
	}()

	if err := c.router.Handle(ctx, record); err != nil {
		c.logger.Error("[policy][consumer] failed to handle record",
			zap.String("topic", record.Topic),
			zap.ByteString("key", record.Key),
			zap.Int32("partition", record.Partition),
			zap.Int64("offset", record.Offset),
			zap.Error(err),
		)
	}
}

func (c *LifecycleConsumer) Close() {
	c.client.Close()
}
