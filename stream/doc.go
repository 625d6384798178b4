// Package stream provides cold, push-based streams with the three classic
// join policies of reactive libraries.
//
// This package is part of [rxchain]. A [Stream] does nothing until it is
// observed; every call to [Stream.Observe] runs the stream from the start,
// so the same Stream can be observed any number of times.
//
// [rxchain]: https://pkg.go.dev/github.com/fxsml/rxchain
//
// # Quick Start
//
//	s := stream.FlatMap(stream.Just(1, 2, 3), func(i int) stream.Stream[string] {
//		return stream.Just(strconv.Itoa(i), strconv.Itoa(i*10))
//	})
//	values, err := stream.ToSlice(ctx, s)
//
// # Categories
//
// Sources: [Just], [FromSlice], [FromSeq], [FromChannel], [Empty], [Fail], [Defer]
//
// Operators: [Map], [TryMap], [Filter], [Take]
//
// Joins: [FlatMap] (concurrent), [ConcatMap] (ordered), [SwitchMap] (latest only),
// [Merge], [Concat]
//
// Composition: [Transformer], [Apply], [Then]
//
// Consumers: [ToSlice], [First], [Last], [All], [Chan]
//
// # Errors
//
// A stream ends with at most one error, returned by Observe. The first
// failure wins: it cancels every inner stream still running and no value is
// delivered after it. A panic raised while a stream is observed is returned
// as a [*PanicError].
package stream
