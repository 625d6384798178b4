package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fxsml/rxchain"
	"github.com/fxsml/rxchain/stream"
)

func newComposeCmd(a *app) *cobra.Command {
	var start, steps int
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose increment and parse transformers",
		Long: `Composes transformers that alternate between incrementing an int into
its decimal string and parsing that string back. Prints the value after
each step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}
			transforms := make([]stream.Transformer[any, any], steps)
			for i := range transforms {
				transforms[i] = composeStep(i)
			}
			zero := func() stream.Stream[any] {
				return stream.Just[any](start)
			}

			for i := 1; i <= steps; i++ {
				s := decorate(a, "compose", rxchain.Compose(zero, transforms[:i]...))
				v, err := stream.First(cmd.Context(), s)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %v (%T)\n", i, v, v)
			}
			return a.writeMetrics(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "Start value")
	cmd.Flags().IntVar(&steps, "steps", 4, "Number of transformers")
	return cmd
}

// composeStep increments ints into strings on even steps and parses them
// back on odd steps.
func composeStep(i int) stream.Transformer[any, any] {
	if i%2 == 0 {
		return stream.Mapper(func(v any) any {
			return strconv.Itoa(v.(int) + 1)
		})
	}
	return func(s stream.Stream[any]) stream.Stream[any] {
		return stream.TryMap(s, func(v any) (any, error) {
			n, err := strconv.Atoi(v.(string))
			return n, err
		})
	}
}
