package stream

import (
	"context"
	"errors"
	"sync"
)

var errSuperseded = errors.New("stream: superseded")

// SwitchMap maps each value of s to an inner stream with f and forwards the
// values of the latest inner stream only. A new value of s cancels the
// previous inner stream; values it produces afterwards are dropped and its
// cancellation is not reported.
//
// The first failure of s, f or the latest inner stream cancels everything
// and is returned. SwitchMap completes after s and the latest inner stream
// have completed.
func SwitchMap[In, Out any](
	s Stream[In],
	f func(In) Stream[Out],
) Stream[Out] {
	return New(func(parent context.Context, next func(Out) error) error {
		ctx, cancel := context.WithCancelCause(parent)
		defer cancel(nil)

		var (
			mu      sync.Mutex
			wg      sync.WaitGroup
			latest  uint64
			release = context.CancelFunc(func() {})
		)
		isLatest := func(id uint64) bool {
			mu.Lock()
			defer mu.Unlock()
			return id == latest
		}

		err := s.Observe(ctx, func(v In) error {
			inner := f(v)

			mu.Lock()
			release()
			latest++
			id := latest
			innerCtx, innerCancel := context.WithCancel(ctx)
			release = innerCancel
			mu.Unlock()

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer innerCancel()
				err := inner.Observe(innerCtx, func(r Out) error {
					mu.Lock()
					defer mu.Unlock()
					if id != latest {
						return errSuperseded
					}
					if ctx.Err() != nil {
						return context.Cause(ctx)
					}
					return next(r)
				})
				if err != nil && isLatest(id) {
					cancel(err)
				}
			}()
			return nil
		})
		if err != nil {
			cancel(err)
		}
		wg.Wait()

		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		return nil
	})
}
