// Package batch runs a function over a slice in bounded concurrent chunks,
// pausing between chunks to avoid hammering downstream services.
package batch

import (
	"context"
	"sync"
	"time"
)

type Options struct {
	ChunkSize int           // max calls in flight at once
	Delay     time.Duration // pause between chunks (not after the last one)
}

// Result holds the outcome for one input item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item, ChunkSize at a time, and returns one Result
// per item in input order. Item errors are recorded, not fatal: the batch
// keeps going. Cancellation is honored between chunks: remaining items keep
// zero Results and ctx.Err() is returned.
func Run[T, R any](ctx context.Context, items []T, opts Options, fn func(context.Context, T) (R, error)) ([]Result[R], error) {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 1
	}

	results := make([]Result[R], len(items))

	for start := 0; start < len(items); start += opts.ChunkSize {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		end := start + opts.ChunkSize
		if end > len(items) {
			end = len(items)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i].Value, results[i].Err = fn(ctx, items[i])
			}(i)
		}
		wg.Wait()

		if opts.Delay > 0 && end < len(items) {
			select {
			case <-time.After(opts.Delay):
			case <-ctx.Done():
				return results, ctx.Err()
			}
		}
	}

	return results, nil
}
