package rxchain

import (
	"context"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxsml/rxchain/stream"
)

func zero(i int) func() stream.Stream[int] {
	return func() stream.Stream[int] {
		return stream.Just(i)
	}
}

func one(value bool) func(int) stream.Stream[bool] {
	return func(int) stream.Stream[bool] {
		return stream.Just(value)
	}
}

func two(value string) func(int, bool) stream.Stream[string] {
	return func(int, bool) stream.Stream[string] {
		return stream.Just(value)
	}
}

func three(other string) func(int, bool, string) stream.Stream[string] {
	return func(int, bool, string) stream.Stream[string] {
		return stream.Just(other)
	}
}

func four(length int64) func(int, bool, string, string) stream.Stream[int64] {
	return func(int, bool, string, string) stream.Stream[int64] {
		return stream.Just(length)
	}
}

func five(b bool) func(int, bool, string, string, int64) stream.Stream[bool] {
	return func(int, bool, string, string, int64) stream.Stream[bool] {
		return stream.Just(b)
	}
}

func six(s string) func(int, bool, string, string, int64, bool) stream.Stream[string] {
	return func(int, bool, string, string, int64, bool) stream.Stream[string] {
		return stream.Just(s)
	}
}

func seven(parameter string) func(int, bool, string, string, int64, bool, string) stream.Stream[bool] {
	return func(int, bool, string, string, int64, bool, string) stream.Stream[bool] {
		b, _ := strconv.ParseBool(parameter)
		return stream.Just(!b)
	}
}

func eight(item reflect.Type) func(int, bool, string, string, int64, bool, string, bool) stream.Stream[reflect.Type] {
	return func(int, bool, string, string, int64, bool, string, bool) stream.Stream[reflect.Type] {
		return stream.Just(item)
	}
}

func nine() func(int, bool, string, string, int64, bool, string, bool, reflect.Type) stream.Stream[any] {
	return func(a int, b bool, c string, d string, e int64, f bool, g string, h bool, i reflect.Type) stream.Stream[any] {
		return stream.Just[any](a, b, c, d, e, f, g, h, i)
	}
}

func intIncrementToString() stream.Transformer[int, string] {
	return stream.Mapper(func(i int) string {
		return strconv.Itoa(i + 1)
	})
}

func stringToInt() stream.Transformer[string, int] {
	return func(s stream.Stream[string]) stream.Stream[int] {
		return stream.TryMap(s, strconv.Atoi)
	}
}

func assertFirst[T any](t *testing.T, want T, s stream.Stream[T]) {
	t.Helper()
	got, err := stream.First(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

type policyCase[T any] struct {
	name   string
	stream stream.Stream[T]
}

func runPolicies[T any](t *testing.T, want T, cases ...policyCase[T]) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertFirst(t, want, c.stream)
		})
	}
}
