package middleware

import (
	"context"
	"time"

	"github.com/fxsml/rxchain/stream"
)

// UseTimeout bounds every subscription to d. When d elapses the
// subscription is canceled and fails with context.DeadlineExceeded.
// A non-positive d leaves the stream undecorated.
func UseTimeout[T any](d time.Duration) stream.Transformer[T, T] {
	return func(s stream.Stream[T]) stream.Stream[T] {
		if d <= 0 {
			return s
		}
		return stream.New(func(ctx context.Context, next func(T) error) error {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return s.Observe(ctx, next)
		})
	}
}
