package channel

import "context"

// ToSlice collects the values received from in into a slice.
// It blocks until in is closed or ctx is done and returns what it has
// collected so far.
func ToSlice[T any](
	ctx context.Context,
	in <-chan T,
) []T {
	var slice []T
	for {
		select {
		case <-ctx.Done():
			return slice
		case val, ok := <-in:
			if !ok {
				return slice
			}
			slice = append(slice, val)
		}
	}
}
