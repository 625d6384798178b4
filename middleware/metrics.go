package middleware

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/fxsml/rxchain/stream"
)

// Outcome labels of a subscription.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeCancel  = "cancel"
)

// Metrics holds the metrics of a single subscription.
type Metrics struct {
	// ID identifies the subscription.
	ID       string
	Start    time.Time
	Duration time.Duration
	// Output is the number of values delivered to the observer.
	Output int
	// InFlight is the number of subscriptions running when this one started,
	// itself included.
	InFlight int

	Error error
}

// Success returns 1 if the subscription completed or was stopped by its
// observer, 0 otherwise.
func (m *Metrics) Success() int {
	if m.Error == nil || errors.Is(m.Error, stream.ErrStop) {
		return 1
	}
	return 0
}

// Cancel returns 1 if the subscription ended because its context was
// canceled or timed out, 0 otherwise.
func (m *Metrics) Cancel() int {
	if isCancel(m.Error) {
		return 1
	}
	return 0
}

// Failure returns 1 if the subscription failed, 0 otherwise.
func (m *Metrics) Failure() int {
	if m.Success() == 0 && m.Cancel() == 0 {
		return 1
	}
	return 0
}

// Outcome returns OutcomeSuccess, OutcomeCancel or OutcomeFailure.
func (m *Metrics) Outcome() string {
	switch {
	case m.Success() == 1:
		return OutcomeSuccess
	case m.Cancel() == 1:
		return OutcomeCancel
	default:
		return OutcomeFailure
	}
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// MetricsCollector receives the metrics of each finished subscription.
// It may be called concurrently.
type MetricsCollector func(metrics *Metrics)

// DistributeMetrics returns a MetricsCollector passing metrics to every
// non-nil collector in order.
func DistributeMetrics(collectors ...MetricsCollector) MetricsCollector {
	return func(m *Metrics) {
		for _, c := range collectors {
			if c != nil {
				c(m)
			}
		}
	}
}

// UseMetrics reports the metrics of every subscription to collect after it
// ends. A nil collector leaves the stream undecorated.
func UseMetrics[T any](collect MetricsCollector) stream.Transformer[T, T] {
	var inFlight atomic.Int32
	return func(s stream.Stream[T]) stream.Stream[T] {
		if collect == nil {
			return s
		}
		return stream.New(func(ctx context.Context, next func(T) error) error {
			m := &Metrics{
				ID:       uuid.NewString(),
				Start:    time.Now(),
				InFlight: int(inFlight.Add(1)),
			}

			err := s.Observe(ctx, func(v T) error {
				m.Output++
				return next(v)
			})

			m.Duration = time.Since(m.Start)
			inFlight.Add(-1)
			m.Error = err

			collect(m)

			return err
		})
	}
}
