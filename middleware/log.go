package middleware

import (
	"log/slog"
	"strings"

	"github.com/fxsml/rxchain/stream"
)

// LogLevel represents the severity level for logging messages.
type LogLevel string

const (
	// LogLevelDebug is used for detailed information.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is used for general information messages.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is used for warning conditions.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is used for error conditions.
	LogLevelError LogLevel = "error"
)

// Logger defines an interface for logging at different severity levels.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LogConfig holds configuration for the logger middleware.
type LogConfig struct {
	// Args are additional arguments to include in all log messages.
	Args []any `yaml:"-"`

	// LevelSuccess is the log level used for completed subscriptions.
	// Defaults to LogLevelDebug.
	LevelSuccess LogLevel `yaml:"level_success"`
	// LevelCancel is the log level used for canceled subscriptions.
	// Defaults to LogLevelWarn.
	LevelCancel LogLevel `yaml:"level_cancel"`
	// LevelFailure is the log level used for failed subscriptions.
	// Defaults to LogLevelError.
	LevelFailure LogLevel `yaml:"level_failure"`

	// MessageSuccess defaults to "RXCHAIN: Success".
	MessageSuccess string `yaml:"message_success"`
	// MessageCancel defaults to "RXCHAIN: Cancel".
	MessageCancel string `yaml:"message_cancel"`
	// MessageFailure defaults to "RXCHAIN: Failure".
	MessageFailure string `yaml:"message_failure"`

	// Disabled disables all logging when set to true.
	Disabled bool `yaml:"disabled"`
}

func parseLogLevel(level LogLevel) LogLevel {
	return LogLevel(strings.ToLower(strings.TrimSpace(string(level))))
}

func (c *LogConfig) parse() {
	c.LevelSuccess = parseLogLevel(c.LevelSuccess)
	if c.LevelSuccess == "" {
		c.LevelSuccess = LogLevelDebug
	}
	c.LevelCancel = parseLogLevel(c.LevelCancel)
	if c.LevelCancel == "" {
		c.LevelCancel = LogLevelWarn
	}
	c.LevelFailure = parseLogLevel(c.LevelFailure)
	if c.LevelFailure == "" {
		c.LevelFailure = LogLevelError
	}
	if c.MessageSuccess == "" {
		c.MessageSuccess = "RXCHAIN: Success"
	}
	if c.MessageCancel == "" {
		c.MessageCancel = "RXCHAIN: Cancel"
	}
	if c.MessageFailure == "" {
		c.MessageFailure = "RXCHAIN: Failure"
	}
}

func logFunc(level LogLevel, log Logger) func(msg string, args ...any) {
	switch level {
	case LogLevelDebug:
		return log.Debug
	case LogLevelWarn:
		return log.Warn
	case LogLevelError:
		return log.Error
	default:
		return log.Info
	}
}

func appendArgs(args ...[]any) []any {
	l := 0
	for _, a := range args {
		l += len(a)
	}
	result := make([]any, 0, l)
	for _, a := range args {
		result = append(result, a...)
	}
	return result
}

// NewMetricsLogger returns a MetricsCollector logging the outcome of each
// subscription. It returns nil if config is disabled.
func NewMetricsLogger(log Logger, config LogConfig) MetricsCollector {
	if config.Disabled {
		return nil
	}
	config.parse()
	logSuccess := logFunc(config.LevelSuccess, log)
	logCancel := logFunc(config.LevelCancel, log)
	logFailure := logFunc(config.LevelFailure, log)
	return func(m *Metrics) {
		base := []any{"subscription", m.ID, "items", m.Output, "duration", m.Duration}
		switch m.Outcome() {
		case OutcomeSuccess:
			logSuccess(config.MessageSuccess, appendArgs(config.Args, base)...)
		case OutcomeCancel:
			logCancel(config.MessageCancel, appendArgs(config.Args, base, []any{"error", m.Error})...)
		default:
			logFailure(config.MessageFailure, appendArgs(config.Args, base, []any{"error", m.Error})...)
		}
	}
}

// UseLogger logs the outcome of every subscription: success, cancellation
// or failure, at the levels configured in config.
func UseLogger[T any](log Logger, config LogConfig) stream.Transformer[T, T] {
	return UseMetrics[T](NewMetricsLogger(log, config))
}

// UseSlog logs with the default slog logger. args are included in all log
// messages.
func UseSlog[T any](args ...any) stream.Transformer[T, T] {
	return UseLogger[T](slog.Default(), LogConfig{
		Args: args,
	})
}
