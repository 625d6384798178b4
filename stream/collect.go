package stream

import (
	"context"
	"errors"
	"iter"

	"github.com/fxsml/rxchain/channel"
)

// ToSlice observes s and returns all of its values. On failure no values
// are returned.
func ToSlice[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	var values []T
	err := s.Observe(ctx, func(v T) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// First observes s until its first value and returns it. Observation stops
// after the first value. ErrEmpty is returned if s completes without one.
func First[T any](ctx context.Context, s Stream[T]) (T, error) {
	var (
		first T
		found bool
	)
	done := newStop("first")
	err := s.Observe(ctx, func(v T) error {
		first, found = v, true
		return done
	})
	if found {
		return first, nil
	}
	if err != nil && !errors.Is(err, done) {
		return first, err
	}
	return first, ErrEmpty
}

// Last observes s to completion and returns its last value. ErrEmpty is
// returned if s completes without one.
func Last[T any](ctx context.Context, s Stream[T]) (T, error) {
	var (
		last  T
		found bool
	)
	err := s.Observe(ctx, func(v T) error {
		last, found = v, true
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		return last, ErrEmpty
	}
	return last, nil
}

// Chan observes s in a new goroutine and sends its values to the returned
// value channel. When observation ends the value channel is closed and the
// result of Observe, nil included, is sent on the error channel before it is
// closed as well.
func Chan[T any](ctx context.Context, s Stream[T], opts ...Option) (<-chan T, <-chan error) {
	cfg := parseConfig(opts)
	out := make(chan T, cfg.BufferSize)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		err := s.Observe(ctx, func(v T) error {
			if !channel.Send(ctx, out, v) {
				return context.Cause(ctx)
			}
			return nil
		})
		close(out)
		errs <- err
	}()

	return out, errs
}

// All returns an iterator over the values of s. A failure is yielded once,
// with the zero value, after the last value. Breaking out of the loop cancels
// the observation.
func All[T any](ctx context.Context, s Stream[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		values, errs := Chan(ctx, s)
		for v := range values {
			if !yield(v, nil) {
				cancel()
				channel.Drain(values)
				<-errs
				return
			}
		}
		if err := <-errs; err != nil {
			var zero T
			yield(zero, err)
		}
	}
}
