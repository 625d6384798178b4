package channel

import (
	"context"
	"sync"
)

// Merge forwards the values of all input channels to a single output channel.
// The returned channel is closed after all inputs are closed, or as soon as
// ctx is done and every forwarding goroutine has returned.
func Merge[T any](
	ctx context.Context,
	ins ...<-chan T,
) <-chan T {
	out := make(chan T)
	var wg sync.WaitGroup
	wg.Add(len(ins))

	for _, in := range ins {
		go func(in <-chan T) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case val, ok := <-in:
					if !ok {
						return
					}
					if !Send(ctx, out, val) {
						return
					}
				}
			}
		}(in)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
