// Package channel provides context-aware channel primitives.
//
// Every function that starts a goroutine stops it when the context is done
// and always closes the channel it returns, so callers can range over the
// result without leaking the producer.
//
// # Quick Start
//
//	in := channel.FromValues(ctx, 1, 2, 3)
//	values := channel.ToSlice(ctx, in)
//
// Sources: [FromSlice], [FromValues]
//
// Fan-in: [Merge]
//
// Sinks: [Send], [ToSlice], [Drain]
//
// The stream package builds on these primitives to bridge streams and
// channels.
package channel
