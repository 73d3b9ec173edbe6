package pipeline

import (
	"context"

	"goagree/internal/manifest"
)

// Processor is the per-species unit of work.
// Any implementation (including fakes in tests) can be plugged in.
type Processor[T any] interface {
	Process(ctx context.Context, e manifest.Entry) (T, error)
}

// ProcessFunc adapts a function to Processor.
type ProcessFunc[T any] func(ctx context.Context, e manifest.Entry) (T, error)

func (f ProcessFunc[T]) Process(ctx context.Context, e manifest.Entry) (T, error) { return f(ctx, e) }
