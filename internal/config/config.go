package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"
)

// Config holds the runtime settings, read from the environment (a .env file is
// loaded by main before Load runs).
type Config struct {
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	Storage    StorageConfig    `mapstructure:"storage"`
	AWS        AWSConfig        `mapstructure:"aws"`
	DynamoDB   DynamoDBConfig   `mapstructure:"dynamodb"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Fraud      FraudConfig      `mapstructure:"fraud"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Processing ProcessingConfig `mapstructure:"processing"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Table    string `mapstructure:"table"`
}

type KafkaConfig struct {
	Enabled           bool     `mapstructure:"enabled"`
	Brokers           []string `mapstructure:"brokers"`
	TopicPolicyEvents string   `mapstructure:"topic_policy_events"`
	TopicPayments     string   `mapstructure:"topic_payments"`
	TopicUnderwriting string   `mapstructure:"topic_underwriting"`
	ConsumerGroup     string   `mapstructure:"consumer_group"`
}

type FraudConfig struct {
	APIURL       string        `mapstructure:"api_url"`
	APITimeout   time.Duration `mapstructure:"api_timeout"`
	AnalysisMock bool          `mapstructure:"analysis_mock"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ProcessingConfig struct {
	LockTTL time.Duration `mapstructure:"lock_ttl"`
}

type DispatcherConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

// Load builds the configuration from defaults and environment variables.
// Nested keys map to upper-case env names with "_" separators
// (kafka.topic_payments -> KAFKA_TOPIC_PAYMENTS).
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind env vars: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("storage.driver", StorageDriverDynamoDB)

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.table", "policy_requests")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic_policy_events", "policy-requests.events")
	v.SetDefault("kafka.topic_payments", "payments.events")
	v.SetDefault("kafka.topic_underwriting", "underwriting.events")
	v.SetDefault("kafka.consumer_group", "policy-request-service")

	v.SetDefault("fraud.api_url", "http://localhost:8081")
	v.SetDefault("fraud.api_timeout", 5*time.Second)
	v.SetDefault("fraud.analysis_mock", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("processing.lock_ttl", 30*time.Second)

	v.SetDefault("dispatcher.workers", 4)
	v.SetDefault("dispatcher.queue_size", 64)
}

// bindEnvVars covers the env names that do not follow the key replacer.
func bindEnvVars(v *viper.Viper) error {
	bindings := map[string]string{
		"dynamodb.table": "POLICY_REQUESTS_TABLE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port out of range: %d", c.HTTP.Port)
	}
	switch c.Storage.Driver {
	case StorageDriverDynamoDB:
		if c.DynamoDB.Table == "" {
			return fmt.Errorf("dynamodb.table is required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if c.Kafka.ConsumerGroup == "" {
			return fmt.Errorf("kafka.consumer_group is required when kafka is enabled")
		}
	}
	if !c.Fraud.AnalysisMock && c.Fraud.APIURL == "" {
		return fmt.Errorf("fraud.api_url is required unless fraud analysis mock is enabled")
	}
	if c.Dispatcher.Workers <= 0 {
		return fmt.Errorf("dispatcher.workers must be positive")
	}
	if c.Dispatcher.QueueSize < 0 {
		return fmt.Errorf("dispatcher.queue_size must not be negative")
	}
	return nil
}

// LockEnabled reports whether a Redis address was configured.
func (c *Config) LockEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
