package lock

import (
	"context"
	"fmt"
	"time"

	"policy_request_service/internal/config"
	"policy_request_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix      = "policy-request:processing:"
	releaseTimeout = 2 * time.Second
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock implements IProcessingLock with SET NX PX.
type RedisLock struct {
	client redis.Cmdable
	logger *zap.Logger
}

var _ interfaces.IProcessingLock = (*RedisLock)(nil)

func NewRedisLock(client redis.Cmdable, logger *zap.Logger) *RedisLock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisLock{client: client, logger: logger.Named("lock")}
}

// NewRedisClient connects to REDIS_ADDR and pings it.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, ttl).Result()
	if err != nil {
		return noopRelease, false, fmt.Errorf("acquire lock %s: %w", redisKey, err)
	}
	if !ok {
		return noopRelease, false, nil
	}

	release := func() {
		// The caller's context may already be done when the run finishes.
		rctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(rctx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.logger.Warn("[policy][lock] release failed", zap.String("key", redisKey), zap.Error(err))
		}
	}
	return release, true, nil
}

func noopRelease() {}
