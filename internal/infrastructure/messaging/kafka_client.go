package messaging

import (
	"context"
	"fmt"
	"time"

	appconfig "policy_request_service/internal/config"

	"github.com/twmb/franz-go/pkg/kgo"
)

const pingTimeout = 10 * time.Second

// NewProducerClient builds the client that publishes lifecycle events and
// checks that at least one seed broker answers.
func NewProducerClient(ctx context.Context, cfg appconfig.KafkaConfig) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.TopicPolicyEvents),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	if err := ping(ctx, client); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// NewConsumerClient joins the consumer group over the payment and
// underwriting topics. Offsets are committed explicitly by the consumer loop.
func NewConsumerClient(ctx context.Context, cfg appconfig.KafkaConfig) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.ConsumerGroup),
		kgo.ConsumeTopics(cfg.TopicPayments, cfg.TopicUnderwriting),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	if err := ping(ctx, client); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func ping(ctx context.Context, client *kgo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("ping kafka brokers: %w", err)
	}
	return nil
}
