package stream

import (
	"context"
	"errors"
)

// Map applies fn to each value of s.
func Map[In, Out any](
	s Stream[In],
	fn func(In) Out,
) Stream[Out] {
	return New(func(ctx context.Context, next func(Out) error) error {
		return s.Observe(ctx, func(v In) error {
			return next(fn(v))
		})
	})
}

// TryMap applies fn to each value of s. The first error returned by fn
// fails the stream.
func TryMap[In, Out any](
	s Stream[In],
	fn func(In) (Out, error),
) Stream[Out] {
	return New(func(ctx context.Context, next func(Out) error) error {
		return s.Observe(ctx, func(v In) error {
			out, err := fn(v)
			if err != nil {
				return err
			}
			return next(out)
		})
	})
}

// Filter passes the values of s for which keep returns true.
func Filter[T any](
	s Stream[T],
	keep func(T) bool,
) Stream[T] {
	return New(func(ctx context.Context, next func(T) error) error {
		return s.Observe(ctx, func(v T) error {
			if !keep(v) {
				return nil
			}
			return next(v)
		})
	})
}

// Take passes the first n values of s and completes. Upstream is stopped
// once n values have been delivered.
func Take[T any](
	s Stream[T],
	n int,
) Stream[T] {
	return New(func(ctx context.Context, next func(T) error) error {
		if n <= 0 {
			return nil
		}
		done := newStop("take")
		count := 0
		err := s.Observe(ctx, func(v T) error {
			if err := next(v); err != nil {
				return err
			}
			count++
			if count == n {
				return done
			}
			return nil
		})
		if errors.Is(err, done) {
			return nil
		}
		return err
	})
}
