package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_RunsEveryJob(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = map[string]int{}
	)
	d := NewDispatcher(context.Background(), func(ctx context.Context, id string) error {
		mu.Lock()
		seen[id]++
		mu.Unlock()
		return nil
	}, 3, 2, nil)

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, id := range ids {
		d.Dispatch(id)
	}
	require.NoError(t, d.Shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		assert.Equal(t, 1, seen[id], id)
	}
}

func TestDispatcher_FullQueueDoesNotBlock(t *testing.T) {
	block := make(chan struct{})
	var ran atomic.Int32
	d := NewDispatcher(context.Background(), func(ctx context.Context, id string) error {
		<-block
		ran.Add(1)
		return nil
	}, 1, 0, nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Dispatch("pr")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Dispatch blocked on a full queue")
	}

	close(block)
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, int32(5), ran.Load())
}

func TestDispatcher_DetachedFromCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	d := NewDispatcher(ctx, func(ctx context.Context, id string) error {
		errs <- ctx.Err()
		return nil
	}, 1, 1, nil)

	cancel()
	d.Dispatch("pr-1")
	require.NoError(t, d.Shutdown(context.Background()))
	assert.NoError(t, <-errs)
}

func TestDispatcher_SurvivesFailuresAndPanics(t *testing.T) {
	var calls atomic.Int32
	d := NewDispatcher(context.Background(), func(ctx context.Context, id string) error {
		calls.Add(1)
		switch id {
		case "boom":
			panic("boom")
		case "fail":
			return errors.New("fail")
		}
		return nil
	}, 1, 4, nil)

	d.Dispatch("boom")
	d.Dispatch("fail")
	d.Dispatch("ok")
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDispatcher_ShutdownTimeoutAndDropAfterStop(t *testing.T) {
	block := make(chan struct{})
	var calls atomic.Int32
	d := NewDispatcher(context.Background(), func(ctx context.Context, id string) error {
		calls.Add(1)
		<-block
		return nil
	}, 1, 1, nil)
	d.Dispatch("slow")

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)

	d.Dispatch("late")
	close(block)
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
}
