// Package rxchain chains dependent asynchronous stages without nesting
// callbacks by hand.
//
// A chain starts from a producer of a [stream.Stream] and adds stages. Each
// stage receives every value produced before it, oldest first, and returns
// the next stream. How the stream of a stage is joined into the chain is set
// by the helper family:
//
//   - [Flatten1] … [Flatten9] join with [stream.FlatMap] (concurrent)
//   - [Ordered1] … [Ordered9] join with [stream.ConcatMap] (in order)
//   - [Latest1] … [Latest9] join with [stream.SwitchMap] (latest only)
//
// [Transform1] … [Transform9] apply a sequence of [stream.Transformer]s to
// the stream of a producer instead.
//
// # Quick Start
//
//	s := rxchain.Flatten2(
//		func() stream.Stream[int] { return stream.Just(3) },
//		func(a int) stream.Stream[string] { return stream.Just(strconv.Itoa(a)) },
//		func(a int, b string) stream.Stream[string] { return stream.Just(b + "!") },
//	)
//	v, err := stream.First(ctx, s) // "3!"
//
// # Dynamic Chains
//
// The fixed-arity helpers are generated up to nine stages. [Chain] and
// [Stages] have no such ceiling; their stages receive the prior values as a
// []any:
//
//	s := rxchain.New(rxchain.Concat).
//		Then(fetchUser, fetchOrders, render).
//		From(loadSession)
//
// [Compose] is the dynamic counterpart of the TransformN helpers.
//
// # Errors
//
// Nothing is caught or wrapped here: a failing stage fails the resulting
// stream with its own error, through the error path of the stream package.
// Producers are called lazily, once per observation.
package rxchain

//go:generate go run ./internal/gen -o chain_gen.go -max 9
