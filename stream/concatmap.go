package stream

import "context"

// ConcatMap maps each value of s to an inner stream with f and forwards the
// values of the inner streams in order: an inner stream is observed to
// completion before the next value of s is processed.
func ConcatMap[In, Out any](
	s Stream[In],
	f func(In) Stream[Out],
) Stream[Out] {
	return New(func(ctx context.Context, next func(Out) error) error {
		return s.Observe(ctx, func(v In) error {
			return f(v).Observe(ctx, next)
		})
	})
}

// Concat observes streams one after the other.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	return ConcatMap(FromSlice(streams), identity[T])
}
