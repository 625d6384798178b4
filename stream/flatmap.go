package stream

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FlatMap maps each value of s to an inner stream with f and merges the
// values of all inner streams as they arrive. Inner streams are observed
// concurrently, at most Config.Concurrency at a time when it is positive.
//
// The first failure of s, f or any inner stream cancels everything still
// running and is returned. FlatMap completes after s and every inner stream
// have completed.
func FlatMap[In, Out any](
	s Stream[In],
	f func(In) Stream[Out],
	opts ...Option,
) Stream[Out] {
	cfg := parseConfig(opts)
	return New(func(parent context.Context, next func(Out) error) error {
		ctx, cancel := context.WithCancelCause(parent)
		defer cancel(nil)

		var mu sync.Mutex
		emit := func(v Out) error {
			mu.Lock()
			defer mu.Unlock()
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			return next(v)
		}

		var g errgroup.Group
		if cfg.Concurrency > 0 {
			g.SetLimit(cfg.Concurrency)
		}
		err := s.Observe(ctx, func(v In) error {
			inner := f(v)
			g.Go(func() error {
				if err := inner.Observe(ctx, emit); err != nil {
					cancel(err)
				}
				return nil
			})
			return nil
		})
		if err != nil {
			cancel(err)
		}
		_ = g.Wait()

		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		return nil
	})
}

// Merge observes all streams concurrently and forwards their values as they
// arrive.
func Merge[T any](streams ...Stream[T]) Stream[T] {
	return FlatMap(FromSlice(streams), identity[T])
}

func identity[T any](s Stream[T]) Stream[T] {
	return s
}
