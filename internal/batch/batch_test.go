package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PreservesInputOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	results, err := Run(context.Background(), items, Options{ChunkSize: 3}, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})

	require.NoError(t, err)
	require.Len(t, results, len(items))
	for i, n := range items {
		assert.Equal(t, n*10, results[i].Value)
		assert.NoError(t, results[i].Err)
	}
}

func TestRun_ItemErrorsAreNotFatal(t *testing.T) {
	items := []int{1, 2, 3, 4}
	boom := errors.New("boom")

	results, err := Run(context.Background(), items, Options{ChunkSize: 2}, func(_ context.Context, n int) (int, error) {
		if n%2 == 0 {
			return 0, fmt.Errorf("item %d: %w", n, boom)
		}
		return n, nil
	})

	require.NoError(t, err)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.NoError(t, results[2].Err)
	assert.ErrorIs(t, results[3].Err, boom)
}

func TestRun_BoundedConcurrency(t *testing.T) {
	var current, peak int32
	var mu sync.Mutex

	items := make([]int, 20)
	_, err := Run(context.Background(), items, Options{ChunkSize: 4}, func(_ context.Context, _ int) (int, error) {
		n := atomic.AddInt32(&current, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		defer atomic.AddInt32(&current, -1)
		return 0, nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak, int32(4))
}

func TestRun_CancelledContextStopsRemainingChunks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	items := []int{1, 2, 3, 4, 5, 6}
	var calls int32

	results, err := Run(ctx, items, Options{ChunkSize: 2}, func(_ context.Context, n int) (int, error) {
		if atomic.AddInt32(&calls, 1) == 2 {
			cancel()
		}
		return n, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, len(items))
	// Only the first chunk ran.
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Zero(t, results[5].Value)
}

func TestRun_DelaysBetweenChunksNotAfterLast(t *testing.T) {
	delay := 30 * time.Millisecond
	opts := Options{ChunkSize: 2, Delay: delay}
	noop := func(_ context.Context, n int) (int, error) { return n, nil }

	// Three chunks incur exactly two delays.
	start := time.Now()
	_, err := Run(context.Background(), []int{1, 2, 3, 4, 5, 6}, opts, noop)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 2*delay)

	// A single chunk incurs none.
	start = time.Now()
	_, err = Run(context.Background(), []int{1, 2}, opts, noop)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), delay)
}

func TestRun_EmptyInput(t *testing.T) {
	results, err := Run(context.Background(), nil, Options{ChunkSize: 5}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRun_ZeroChunkSizeDefaultsToSerial(t *testing.T) {
	items := []int{1, 2, 3}

	results, err := Run(context.Background(), items, Options{}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 3, results[2].Value)
}
