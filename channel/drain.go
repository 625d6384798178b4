package channel

// Drain receives from in until it is closed and returns the number of values
// it discarded. Use it to unblock a producer whose output is no longer read.
func Drain[T any](in <-chan T) int {
	n := 0
	for range in {
		n++
	}
	return n
}
