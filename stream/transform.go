package stream

// Transformer turns a stream into another stream, typically by applying a
// sequence of operators.
type Transformer[In, Out any] func(Stream[In]) Stream[Out]

// Apply returns the stream produced by applying t to s.
func Apply[In, Out any](
	s Stream[In],
	t Transformer[In, Out],
) Stream[Out] {
	return t(s)
}

// Then composes two transformers into one, applying a first.
func Then[A, B, C any](
	a Transformer[A, B],
	b Transformer[B, C],
) Transformer[A, C] {
	return func(s Stream[A]) Stream[C] {
		return b(a(s))
	}
}

// Mapper returns a Transformer applying fn to every value.
func Mapper[In, Out any](fn func(In) Out) Transformer[In, Out] {
	return func(s Stream[In]) Stream[Out] {
		return Map(s, fn)
	}
}
