// Package middleware decorates streams with cross-cutting behaviour.
//
// Every decorator is a [stream.Transformer] that returns the stream it wraps
// unchanged in values and errors. Decorators act once per subscription:
// observing a decorated stream twice reports twice.
//
//	s = stream.Apply(s, middleware.UseLogger[int](slog.Default(), middleware.LogConfig{}))
//	s = stream.Apply(s, middleware.UseTimeout[int](time.Second))
package middleware
