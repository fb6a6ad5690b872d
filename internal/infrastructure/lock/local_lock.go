package lock

import (
	"context"
	"sync"
	"time"

	"policy_request_service/internal/usecase/interfaces"
)

// LocalLock is an in-process IProcessingLock for single-replica runs and
// tests. Entries expire after their ttl like the Redis keys do.
type LocalLock struct {
	mu      sync.Mutex
	holders map[string]localHolder
	next    uint64
	now     func() time.Time
}

type localHolder struct {
	token   uint64
	expires time.Time
}

var _ interfaces.IProcessingLock = (*LocalLock)(nil)

func NewLocalLock() *LocalLock {
	return &LocalLock{holders: make(map[string]localHolder), now: time.Now}
}

func (l *LocalLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	if err := ctx.Err(); err != nil {
		return noopRelease, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if h, ok := l.holders[key]; ok && now.Before(h.expires) {
		return noopRelease, false, nil
	}

	l.next++
	token := l.next
	l.holders[key] = localHolder{token: token, expires: now.Add(ttl)}

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if h, ok := l.holders[key]; ok && h.token == token {
				delete(l.holders, key)
			}
		})
	}
	return release, true, nil
}
