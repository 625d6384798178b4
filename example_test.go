package rxchain_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxsml/rxchain"
	"github.com/fxsml/rxchain/stream"
)

func ExampleOrdered3() {
	users := func() stream.Stream[string] {
		return stream.Just("ada", "bob")
	}
	orders := func(user string) stream.Stream[int] {
		return stream.Just(len(user), len(user)*2)
	}
	total := func(user string, order int) stream.Stream[int] {
		return stream.Just(order * 10)
	}
	report := func(user string, order, total int) stream.Stream[string] {
		return stream.Just(fmt.Sprintf("%s #%d = %d", user, order, total))
	}

	lines, err := stream.ToSlice(context.Background(), rxchain.Ordered3(users, orders, total, report))
	if err != nil {
		panic(err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}

	// Output:
	// ada #3 = 30
	// ada #6 = 60
	// bob #3 = 30
	// bob #6 = 60
}

func ExampleTransform2() {
	words := func() stream.Stream[string] {
		return stream.Just("go", "rx")
	}
	upper := stream.Mapper(strings.ToUpper)
	length := stream.Mapper(func(s string) string {
		return s + ":" + strconv.Itoa(len(s))
	})

	values, err := stream.ToSlice(context.Background(), rxchain.Transform2(words, upper, length))
	if err != nil {
		panic(err)
	}
	fmt.Println(values)

	// Output:
	// [GO:2 RX:2]
}

func ExampleChain() {
	square := func(prev []any) stream.Stream[any] {
		n := prev[0].(int)
		return stream.Just[any](n * n)
	}
	describe := func(prev []any) stream.Stream[any] {
		return stream.Just[any](fmt.Sprintf("%d² = %d", prev[0], prev[1]))
	}

	c := rxchain.New(rxchain.Concat).Then(square, describe)
	values, err := stream.ToSlice(context.Background(), c.From(func() stream.Stream[any] {
		return stream.Just[any](2, 3)
	}))
	if err != nil {
		panic(err)
	}
	fmt.Println(values)

	// Output:
	// [2² = 4 3² = 9]
}
