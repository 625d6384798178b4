package rxchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fxsml/rxchain/stream"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("rxchain: unknown policy")

// Policy selects how the stream of each stage is joined into a chain.
type Policy int

const (
	// Merge observes the streams of a stage concurrently and interleaves
	// their values, see [stream.FlatMap].
	Merge Policy = iota
	// Concat observes the streams of a stage one at a time, in order,
	// see [stream.ConcatMap].
	Concat
	// Switch observes only the stream of the latest value, cancelling the
	// previous one, see [stream.SwitchMap].
	Switch
)

func (p Policy) String() string {
	switch p {
	case Merge:
		return "merge"
	case Concat:
		return "concat"
	case Switch:
		return "switch"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy returns the Policy for name. Both the operator names and the
// names of the helper families are accepted, case-insensitively:
//
//	merge, flatten, flatmap     → Merge
//	concat, ordered, concatmap  → Concat
//	switch, latest, switchmap   → Switch
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "merge", "flatten", "flatmap":
		return Merge, nil
	case "concat", "ordered", "concatmap":
		return Concat, nil
	case "switch", "latest", "switchmap":
		return Switch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Bind joins the stream f returns for every value of s according to p.
// Options apply to Merge only. An unknown policy panics.
func Bind[T, R any](
	p Policy,
	s stream.Stream[T],
	f func(T) stream.Stream[R],
	opts ...stream.Option,
) stream.Stream[R] {
	switch p {
	case Merge:
		return stream.FlatMap(s, f, opts...)
	case Concat:
		return stream.ConcatMap(s, f)
	case Switch:
		return stream.SwitchMap(s, f)
	}
	panic(fmt.Sprintf("rxchain: bind with %v", p))
}
