package stream

import (
	"context"
	"iter"
)

// Stream is a cold sequence of values pushed to an observer.
// Every call to Observe starts an independent run. The zero value is an
// empty stream.
type Stream[T any] struct {
	observe func(ctx context.Context, next func(T) error) error
}

// New creates a Stream from an observe function. The function must call
// next sequentially, stop at the first non-nil error next returns and
// return that error.
func New[T any](
	observe func(ctx context.Context, next func(T) error) error,
) Stream[T] {
	return Stream[T]{observe: observe}
}

// Observe subscribes next to s and blocks until s completes, fails or ctx is
// done. It returns nil on completion and the failure otherwise; if ctx ends
// first, the cause of ctx is returned. next is never called concurrently.
// A panic raised while observing is returned as a *PanicError.
func (s Stream[T]) Observe(ctx context.Context, next func(T) error) (err error) {
	if ctx.Err() != nil {
		return context.Cause(ctx)
	}
	if s.observe == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return s.observe(ctx, next)
}

// Empty returns a stream that completes without values.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// Fail returns a stream that fails with err without values.
func Fail[T any](err error) Stream[T] {
	return New(func(context.Context, func(T) error) error {
		return err
	})
}

// Just returns a stream of the given values.
func Just[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

// FromSlice returns a stream of the elements of slice. The slice is read on
// every observation, not copied.
func FromSlice[T any](slice []T) Stream[T] {
	return New(func(ctx context.Context, next func(T) error) error {
		for _, v := range slice {
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			if err := next(v); err != nil {
				return err
			}
		}
		return nil
	})
}

// FromSeq returns a stream of the values yielded by seq.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return New(func(ctx context.Context, next func(T) error) error {
		var err error
		for v := range seq {
			if ctx.Err() != nil {
				err = context.Cause(ctx)
				break
			}
			if err = next(v); err != nil {
				break
			}
		}
		return err
	})
}

// FromChannel returns a stream of the values received from in. It completes
// when in is closed. The channel is shared: concurrent observations split its
// values between them.
func FromChannel[T any](in <-chan T) Stream[T] {
	return New(func(ctx context.Context, next func(T) error) error {
		for {
			select {
			case <-ctx.Done():
				return context.Cause(ctx)
			case v, ok := <-in:
				if !ok {
					return nil
				}
				if err := next(v); err != nil {
					return err
				}
			}
		}
	})
}

// Defer calls f on every observation and observes the stream it returns.
func Defer[T any](f func() Stream[T]) Stream[T] {
	return New(func(ctx context.Context, next func(T) error) error {
		return f().Observe(ctx, next)
	})
}
