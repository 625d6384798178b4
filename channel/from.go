package channel

import "context"

// FromSlice sends each element of slice into the returned channel.
// The returned channel is closed after all values have been sent or ctx is
// done, whichever comes first.
func FromSlice[T any](
	ctx context.Context,
	slice []T,
) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)
		for _, val := range slice {
			if !Send(ctx, out, val) {
				return
			}
		}
	}()

	return out
}

// FromValues sends each value into the returned channel.
// The returned channel is closed after all values have been sent or ctx is
// done, whichever comes first.
func FromValues[T any](
	ctx context.Context,
	values ...T,
) <-chan T {
	return FromSlice(ctx, values)
}
