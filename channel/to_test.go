package channel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fxsml/rxchain/channel"
)

func TestToSlice_Ints(t *testing.T) {
	in := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	assert.Equal(t, []int{1, 2, 3}, channel.ToSlice(context.Background(), in))
}

func TestToSlice_Empty(t *testing.T) {
	in := make(chan string)
	close(in)

	assert.Empty(t, channel.ToSlice(context.Background(), in))
}

func TestToSlice_ReturnsOnCancel(t *testing.T) {
	in := make(chan int, 1)
	in <- 7
	ctx, cancel := context.WithCancel(context.Background())

	got := make(chan []int)
	go func() {
		got <- channel.ToSlice(ctx, in)
	}()
	cancel()

	// in is never closed; ToSlice must return anyway.
	slice := <-got
	assert.LessOrEqual(t, len(slice), 1)
}
