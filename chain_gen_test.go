package rxchain

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxsml/rxchain/stream"
)

var int64Type = reflect.TypeFor[int64]()

func TestArity1(t *testing.T) {
	runPolicies(t, true,
		policyCase[bool]{"flatten", Flatten1(zero(1), one(true))},
		policyCase[bool]{"ordered", Ordered1(zero(1), one(true))},
		policyCase[bool]{"latest", Latest1(zero(1), one(true))},
	)
}

func TestArity2(t *testing.T) {
	runPolicies(t, "result",
		policyCase[string]{"flatten", Flatten2(zero(2), one(true), two("result"))},
		policyCase[string]{"ordered", Ordered2(zero(2), one(true), two("result"))},
		policyCase[string]{"latest", Latest2(zero(2), one(true), two("result"))},
	)
}

func TestArity3(t *testing.T) {
	runPolicies(t, "other",
		policyCase[string]{"flatten", Flatten3(zero(3), one(true), two("result"), three("other"))},
		policyCase[string]{"ordered", Ordered3(zero(3), one(true), two("result"), three("other"))},
		policyCase[string]{"latest", Latest3(zero(3), one(true), two("result"), three("other"))},
	)
}

func TestArity4(t *testing.T) {
	length := int64(len("other"))
	runPolicies(t, length,
		policyCase[int64]{"flatten", Flatten4(zero(4), one(true), two("result"), three("other"), four(length))},
		policyCase[int64]{"ordered", Ordered4(zero(4), one(true), two("result"), three("other"), four(length))},
		policyCase[int64]{"latest", Latest4(zero(4), one(true), two("result"), three("other"), four(length))},
	)
}

func TestArity5(t *testing.T) {
	length := int64(len("other"))
	runPolicies(t, false,
		policyCase[bool]{"flatten", Flatten5(zero(1), one(true), two("result"), three("other"), four(length), five(false))},
		policyCase[bool]{"ordered", Ordered5(zero(1), one(true), two("result"), three("other"), four(length), five(false))},
		policyCase[bool]{"latest", Latest5(zero(1), one(true), two("result"), three("other"), four(length), five(false))},
	)
}

func TestArity6(t *testing.T) {
	length := int64(len("other"))
	runPolicies(t, "false",
		policyCase[string]{"flatten", Flatten6(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"))},
		policyCase[string]{"ordered", Ordered6(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"))},
		policyCase[string]{"latest", Latest6(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"))},
	)
}

func TestArity7(t *testing.T) {
	length := int64(len("other"))
	runPolicies(t, false,
		policyCase[bool]{"flatten", Flatten7(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"))},
		policyCase[bool]{"ordered", Ordered7(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"))},
		policyCase[bool]{"latest", Latest7(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"))},
	)
}

func TestArity8(t *testing.T) {
	length := int64(len("other"))
	runPolicies(t, int64Type,
		policyCase[reflect.Type]{"flatten", Flatten8(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"), eight(int64Type))},
		policyCase[reflect.Type]{"ordered", Ordered8(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"), eight(int64Type))},
		policyCase[reflect.Type]{"latest", Latest8(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"), eight(int64Type))},
	)
}

func TestArity9_EveryValueReachesTheLastStage(t *testing.T) {
	length := int64(len("other"))
	want := []any{1, true, "result", "other", length, false, "false", false, int64Type}

	cases := []policyCase[any]{
		{"flatten", Flatten9(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"), eight(int64Type), nine())},
		{"ordered", Ordered9(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"), eight(int64Type), nine())},
		{"latest", Latest9(zero(1), one(true), two("result"), three("other"), four(length), five(false), six("false"), seven("true"), eight(int64Type), nine())},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := stream.ToSlice(context.Background(), c.stream)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFlatten_EqualsManualNesting(t *testing.T) {
	producer := func() stream.Stream[int] { return stream.Just(1, 2) }
	first := func(a int) stream.Stream[int] { return stream.Just(a*10, a*100) }
	second := func(a, b int) stream.Stream[int] { return stream.Just(a + b) }

	manual := stream.FlatMap(producer(), func(a int) stream.Stream[int] {
		return stream.FlatMap(first(a), func(b int) stream.Stream[int] {
			return second(a, b)
		})
	})

	want, err := stream.ToSlice(context.Background(), manual)
	require.NoError(t, err)
	got, err := stream.ToSlice(context.Background(), Flatten2(producer, first, second))
	require.NoError(t, err)

	assert.ElementsMatch(t, want, got)
	assert.ElementsMatch(t, []int{11, 101, 22, 202}, got)
}

func TestOrdered_KeepsProducerOrder(t *testing.T) {
	producer := func() stream.Stream[int] { return stream.Just(1, 2) }
	first := func(a int) stream.Stream[int] { return stream.Just(a*10, a*100) }
	second := func(a, b int) stream.Stream[int] { return stream.Just(a + b) }

	got, err := stream.ToSlice(context.Background(), Ordered2(producer, first, second))

	require.NoError(t, err)
	assert.Equal(t, []int{11, 101, 22, 202}, got)
}

// failingChain builds a chain of n int stages whose last stage fails.
func failingChain(p Policy, n int, cause error) stream.Stream[int] {
	z := func() stream.Stream[int] { return stream.Just(0) }
	failed := stream.Fail[int](cause)
	ok1 := func(int) stream.Stream[int] { return stream.Just(1) }
	ok2 := func(int, int) stream.Stream[int] { return stream.Just(2) }
	ok3 := func(int, int, int) stream.Stream[int] { return stream.Just(3) }
	ok4 := func(int, int, int, int) stream.Stream[int] { return stream.Just(4) }
	ok5 := func(int, int, int, int, int) stream.Stream[int] { return stream.Just(5) }
	ok6 := func(int, int, int, int, int, int) stream.Stream[int] { return stream.Just(6) }
	ok7 := func(int, int, int, int, int, int, int) stream.Stream[int] { return stream.Just(7) }
	ok8 := func(int, int, int, int, int, int, int, int) stream.Stream[int] { return stream.Just(8) }

	switch n {
	case 1:
		return chain1(p, z, func(int) stream.Stream[int] { return failed })
	case 2:
		return chain2(p, z, ok1, func(int, int) stream.Stream[int] { return failed })
	case 3:
		return chain3(p, z, ok1, ok2, func(int, int, int) stream.Stream[int] { return failed })
	case 4:
		return chain4(p, z, ok1, ok2, ok3, func(int, int, int, int) stream.Stream[int] { return failed })
	case 5:
		return chain5(p, z, ok1, ok2, ok3, ok4, func(int, int, int, int, int) stream.Stream[int] { return failed })
	case 6:
		return chain6(p, z, ok1, ok2, ok3, ok4, ok5, func(int, int, int, int, int, int) stream.Stream[int] { return failed })
	case 7:
		return chain7(p, z, ok1, ok2, ok3, ok4, ok5, ok6, func(int, int, int, int, int, int, int) stream.Stream[int] { return failed })
	case 8:
		return chain8(p, z, ok1, ok2, ok3, ok4, ok5, ok6, ok7, func(int, int, int, int, int, int, int, int) stream.Stream[int] { return failed })
	default:
		return chain9(p, z, ok1, ok2, ok3, ok4, ok5, ok6, ok7, ok8, func(int, int, int, int, int, int, int, int, int) stream.Stream[int] { return failed })
	}
}

func TestFailurePropagatesUnchanged(t *testing.T) {
	cause := errors.New("stage failed")
	for _, p := range []Policy{Merge, Concat, Switch} {
		for n := 1; n <= 9; n++ {
			t.Run(p.String()+"/"+strconv.Itoa(n), func(t *testing.T) {
				var values []int
				err := failingChain(p, n, cause).Observe(context.Background(), func(v int) error {
					values = append(values, v)
					return nil
				})

				assert.Equal(t, cause, err)
				assert.Empty(t, values)
			})
		}
	}
}

func TestFailure_LaterStagesNotCalled(t *testing.T) {
	cause := errors.New("first stage failed")
	called := false

	s := Ordered3(
		zero(1),
		func(int) stream.Stream[bool] { return stream.Fail[bool](cause) },
		two("result"),
		func(int, bool, string) stream.Stream[string] {
			called = true
			return stream.Just("other")
		},
	)
	_, err := stream.First(context.Background(), s)

	assert.Equal(t, cause, err)
	assert.False(t, called)
}

func TestFailure_ProducerPanics(t *testing.T) {
	s := Flatten1(
		func() stream.Stream[int] { panic("producer") },
		one(true),
	)

	_, err := stream.First(context.Background(), s)

	var perr *stream.PanicError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "producer", perr.Value)
}

func TestChain_ReobservationIsIdempotent(t *testing.T) {
	s := Flatten3(zero(3), one(true), two("result"), three("other"))

	for range 3 {
		got, err := stream.ToSlice(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, []string{"other"}, got)
	}
}

func TestChain_ProducerCalledPerObservation(t *testing.T) {
	calls := 0
	s := Ordered1(
		func() stream.Stream[int] {
			calls++
			return stream.Just(calls)
		},
		func(a int) stream.Stream[int] { return stream.Just(a) },
	)

	assertFirst(t, 1, s)
	assertFirst(t, 2, s)
}

func TestTransform(t *testing.T) {
	t.Run("one", func(t *testing.T) {
		assertFirst(t, "1", Transform1(zero(0), intIncrementToString()))
	})
	t.Run("two", func(t *testing.T) {
		assertFirst(t, 1, Transform2(zero(0), intIncrementToString(), stringToInt()))
	})
	t.Run("three", func(t *testing.T) {
		assertFirst(t, "2", Transform3(zero(0), intIncrementToString(), stringToInt(), intIncrementToString()))
	})
	t.Run("four", func(t *testing.T) {
		assertFirst(t, 2, Transform4(zero(0), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt()))
	})
	t.Run("five", func(t *testing.T) {
		assertFirst(t, "3", Transform5(zero(0), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString()))
	})
	t.Run("six", func(t *testing.T) {
		assertFirst(t, 3, Transform6(zero(0), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt()))
	})
	t.Run("seven", func(t *testing.T) {
		assertFirst(t, "4", Transform7(zero(0), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString()))
	})
	t.Run("eight", func(t *testing.T) {
		assertFirst(t, 4, Transform8(zero(0), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt()))
	})
	t.Run("nine", func(t *testing.T) {
		assertFirst(t, "5", Transform9(zero(0), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString(), stringToInt(), intIncrementToString()))
	})
}

func TestTransform_FailurePropagates(t *testing.T) {
	producer := func() stream.Stream[string] { return stream.Just("not a number") }

	_, err := stream.First(context.Background(), Transform1(producer, stringToInt()))

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid syntax")
}
