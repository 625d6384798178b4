package channel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_AllValues(t *testing.T) {
	ctx := context.Background()
	out := Merge(ctx, FromValues(ctx, 1, 2), FromValues(ctx, 3, 4))

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, ToSlice(ctx, out))
}

func TestMerge_ZeroInputs(t *testing.T) {
	out := Merge[int](context.Background())

	_, ok := <-out
	assert.False(t, ok, "expected closed channel when merging zero inputs")
}

func TestMerge_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	never := make(chan int)
	out := Merge(ctx, never)

	cancel()

	select {
	case _, ok := <-out:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("merge did not close after cancel")
	}
}

func TestSend(t *testing.T) {
	out := make(chan int, 1)
	assert.True(t, Send(context.Background(), out, 1))
	assert.Equal(t, 1, <-out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, Send(ctx, make(chan int), 2))
}

func TestDrain(t *testing.T) {
	in := make(chan int, 3)
	in <- 1
	in <- 2
	close(in)

	assert.Equal(t, 2, Drain(in))
	assert.Equal(t, 0, Drain(FromValues[int](context.Background())))
}
