package rxchain

import "github.com/fxsml/rxchain/stream"

// Compose applies transforms in order to the stream produced by zero. It is
// the arity-free form of the TransformN helpers for transformers that keep
// the value type. zero is called once per observation.
func Compose[T any](
	zero func() stream.Stream[T],
	transforms ...stream.Transformer[T, T],
) stream.Stream[T] {
	s := stream.Defer(zero)
	for _, t := range transforms {
		s = t(s)
	}
	return s
}
