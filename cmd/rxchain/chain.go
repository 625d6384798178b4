package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fxsml/rxchain"
	"github.com/fxsml/rxchain/channel"
	"github.com/fxsml/rxchain/stream"
)

func newChainCmd(a *app) *cobra.Command {
	var (
		policy string
		stages int
		values []int
	)
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Run a chain of summing stages",
		Long: `Runs a chain started by --values. Stage k emits the sum of all values
produced before it plus k. Every result is printed on its own line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rxchain.ParsePolicy(policy)
			if err != nil {
				return err
			}
			if stages < 0 {
				return fmt.Errorf("stages must not be negative, got %d", stages)
			}
			ctx := cmd.Context()
			s := decorate(a, "chain", buildChain(p, a.settings.Stream, stages, values))
			a.log.Debug("running chain", "policy", p, "stages", stages, "values", len(values))
			if err := printAll(ctx, cmd, a, s); err != nil {
				return err
			}
			return a.writeMetrics(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "merge", "Join policy: merge, concat or switch")
	cmd.Flags().IntVar(&stages, "stages", 3, "Number of stages after the producer")
	cmd.Flags().IntSliceVar(&values, "values", []int{1, 2, 3}, "Values of the producer")
	return cmd
}

func buildChain(
	p rxchain.Policy,
	cfg stream.Config,
	stages int,
	values []int,
) stream.Stream[any] {
	c := rxchain.New(p, stream.WithConfig(cfg))
	for k := 1; k <= stages; k++ {
		c = c.Then(sumStage(k))
	}
	in := make([]any, len(values))
	for i, v := range values {
		in[i] = v
	}
	producer := stream.New(func(ctx context.Context, next func(any) error) error {
		return stream.FromChannel(channel.FromSlice(ctx, in)).Observe(ctx, next)
	})
	return c.From(func() stream.Stream[any] {
		return producer
	})
}

func sumStage(k int) rxchain.Stage {
	return func(prev []any) stream.Stream[any] {
		sum := k
		for _, v := range prev {
			sum += v.(int)
		}
		return stream.Just[any](sum)
	}
}

func printAll[T any](ctx context.Context, cmd *cobra.Command, a *app, s stream.Stream[T]) error {
	values, errs := stream.Chan(ctx, s, stream.WithConfig(a.settings.Stream))
	for v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return <-errs
}
