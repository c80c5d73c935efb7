package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueueRunsEnqueuedJob(t *testing.T) {
	done := make(chan string, 1)
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		done <- job.ID
		return nil
	}, Options{Workers: 1})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "j1", Type: "noop"}))
	select {
	case id := <-done:
		require.Equal(t, "j1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran")
	}
}

func TestQueueRetriesThenAbandons(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		mu.Lock()
		attempts++
		mu.Unlock()
		return errors.New("boom")
	}, Options{Workers: 1, MaxAttempts: 2, Backoff: time.Millisecond})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "j1"}))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return attempts == 2
	}, 2*time.Second, 5*time.Millisecond)
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 2, attempts)
}

func TestQueueEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("test", func(ctx context.Context, job Job) error { return nil }, Options{})
	require.Error(t, q.Enqueue(Job{ID: "j1"}))
}
