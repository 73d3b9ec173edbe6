package pipeline

import (
	"context"
	"sync"

	"goagree/internal/manifest"
)

// Config controls the species pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

type result[T any] struct {
	idx int
	val T
	err error
}

// ForEachSpecies processes entries with cfg.Threads workers and calls visit
// once per entry, in slice order, from a single goroutine. A processing
// error is passed to visit with the zero T; it does not stop the run.
// ForEachSpecies returns the first visit error or the context error.
func ForEachSpecies[T any](
	ctx context.Context,
	cfg Config,
	entries []manifest.Entry,
	proc Processor[T],
	visit func(e manifest.Entry, v T, err error) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, cfg.Threads*2)
	results := make(chan result[T], cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					v, err := proc.Process(ctx, entries[i])
					select {
					case results <- result[T]{idx: i, val: v, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder and visit serially.
	var (
		verr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result[T])
		next := 0
		for r := range results {
			if verr != nil {
				continue
			}
			pending[r.idx] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := visit(entries[next], p.val, p.err); err != nil {
					verr = err
					cancel()
					break
				}
				next++
			}
		}
	}()

	// Feed work
feed:
	for i := range entries {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if verr != nil {
		return verr
	}
	return ctx.Err()
}
