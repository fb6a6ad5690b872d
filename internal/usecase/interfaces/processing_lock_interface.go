package interfaces

import (
	"context"
	"time"
)

// IProcessingLock deduplicates concurrent processing runs for the same key
// across service replicas.
//
// Acquire returns acquired=false when another holder owns the key. The returned
// release func is never nil.
type IProcessingLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool, err error)
}
