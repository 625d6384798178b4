package stream

// Config configures stream joins and consumers.
type Config struct {
	// Concurrency bounds the number of inner streams FlatMap observes at
	// once. Default is 0 (unbounded).
	Concurrency int `yaml:"concurrency"`

	// BufferSize sets the buffer of the value channel returned by Chan.
	// Default is 0 (unbuffered).
	BufferSize int `yaml:"buffer_size"`
}

// Option configures a single operator or consumer call.
type Option func(*Config)

// WithConcurrency bounds the number of concurrently observed inner streams.
func WithConcurrency(n int) Option {
	return func(c *Config) {
		c.Concurrency = n
	}
}

// WithBufferSize sets the buffer size of channels created by Chan.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		c.BufferSize = n
	}
}

// WithConfig replaces the whole configuration, typically one loaded with
// the config package.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func parseConfig(opts []Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.Concurrency < 0 {
		c.Concurrency = 0
	}
	if c.BufferSize < 0 {
		c.BufferSize = 0
	}
	return c
}
