package channel

import "context"

// Send delivers v to out unless ctx is done first.
// It reports whether v was delivered.
func Send[T any](
	ctx context.Context,
	out chan<- T,
	v T,
) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- v:
		return true
	}
}
