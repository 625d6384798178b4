package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/fxsml/rxchain/config"
	"github.com/fxsml/rxchain/internal/logging"
	"github.com/fxsml/rxchain/metrics"
	"github.com/fxsml/rxchain/middleware"
	"github.com/fxsml/rxchain/stream"
)

// settings is the layout of the --config file. Every section can be
// overridden with RXCHAIN_{SECTION}_{FIELD} environment variables.
type settings struct {
	Stream stream.Config        `yaml:"stream"`
	Log    middleware.LogConfig `yaml:"log"`
	Run    runConfig            `yaml:"run"`
}

type runConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

var sections = []string{"stream", "log", "run"}

func (s *settings) section(name string) any {
	switch name {
	case "stream":
		return &s.Stream
	case "log":
		return &s.Log
	default:
		return &s.Run
	}
}

// app holds the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	debug      bool
	metrics    bool
	timeout    time.Duration

	settings  settings
	log       *slog.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "rxchain",
		Short: "rxchain chains dependent streams",
		Long: `rxchain runs chains of dependent stream stages joined with a merge,
concat or switch policy and prints their results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Print Prometheus metrics of the run")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Bound each run (0 disables)")

	cmd.AddCommand(
		newChainCmd(a),
		newComposeCmd(a),
		newEnvCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		if err := config.LoadFile(a.configPath, &a.settings); err != nil {
			return err
		}
	}
	for _, name := range sections {
		if err := config.Load(name, a.settings.section(name)); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("timeout") {
		a.settings.Run.Timeout = a.timeout
	}

	level := slog.LevelInfo
	if a.debug {
		level = slog.LevelDebug
	}
	a.log = logging.NewWriter(cmd.ErrOrStderr(), level)

	if a.metrics {
		a.registry = prometheus.NewRegistry()
		c, err := metrics.NewCollector(a.registry, "rxchain")
		if err != nil {
			return err
		}
		a.collector = c
	}
	return nil
}

// decorate applies the middleware configured for this run to s.
func decorate[T any](a *app, name string, s stream.Stream[T]) stream.Stream[T] {
	s = stream.Apply(s, middleware.UseTimeout[T](a.settings.Run.Timeout))
	logConfig := a.settings.Log
	logConfig.Args = []any{"stream", name}
	var collect middleware.MetricsCollector
	if a.collector != nil {
		collect = a.collector.For(name)
	}
	return stream.Apply(s, middleware.UseMetrics[T](middleware.DistributeMetrics(
		middleware.NewMetricsLogger(a.log, logConfig),
		collect,
	)))
}

// writeMetrics prints the gathered metrics in the Prometheus text format.
func (a *app) writeMetrics(w io.Writer) error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
