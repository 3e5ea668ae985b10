// Package worker provides a small generic pool that fans inputs out over a
// fixed number of goroutines while keeping results in input order.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Result pairs an input with its processing outcome.
type Result[T any, R any] struct {
	Input T
	Value R
	Err   error
}

// Func processes a single input.
type Func[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool runs a Func over many inputs with bounded concurrency.
type Pool[T any, R any] struct {
	workers int
	fn      Func[T, R]
}

// New creates a pool with the given worker count (minimum 1).
func New[T any, R any](workers int, fn Func[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{workers: workers, fn: fn}
}

// Run processes every input and returns one Result per input, index-aligned
// with the inputs slice. Individual failures are recorded per result and do
// not stop the other workers.
func (p *Pool[T, R]) Run(ctx context.Context, inputs []T) []Result[T, R] {
	results := make([]Result[T, R], len(inputs))
	indexes := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-indexes:
					if !ok {
						return
					}
					value, err := p.fn(ctx, inputs[i])
					results[i] = Result[T, R]{Input: inputs[i], Value: value, Err: err}
					if err != nil {
						log.Error().Err(err).Int("worker", id).Int("index", i).Msg("Task failed")
					}
				}
			}
		}(w)
	}

	for i := range inputs {
		indexes <- i
	}
	close(indexes)

	wg.Wait()
	return results
}
