// Package metrics exports stream subscription metrics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fxsml/rxchain/middleware"
)

// Collector holds the Prometheus metrics of all streams reporting to it.
type Collector struct {
	subscriptions *prometheus.CounterVec   // By stream and outcome (success/failure/cancel)
	items         *prometheus.CounterVec   // By stream
	duration      *prometheus.HistogramVec // By stream
}

// NewCollector creates the stream metrics under namespace and registers them
// with reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		subscriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "subscriptions_total",
			Help:      "Total number of finished stream subscriptions",
		}, []string{"stream", "outcome"}),

		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "items_total",
			Help:      "Total number of values delivered to stream observers",
		}, []string{"stream"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "duration_seconds",
			Help:      "Stream subscription duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
		}, []string{"stream"}),
	}

	for _, collector := range []prometheus.Collector{c.subscriptions, c.items, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// For returns a MetricsCollector recording subscriptions under the stream
// label name. Use it with middleware.UseMetrics.
func (c *Collector) For(name string) middleware.MetricsCollector {
	return func(m *middleware.Metrics) {
		c.subscriptions.WithLabelValues(name, m.Outcome()).Inc()
		c.items.WithLabelValues(name).Add(float64(m.Output))
		c.duration.WithLabelValues(name).Observe(m.Duration.Seconds())
	}
}
