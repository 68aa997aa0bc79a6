package rectangle

import (
	"log/slog"

	"github.com/hashicorp/go-metrics"
)

type config struct {
	name         string
	logHandler   slog.Handler
	msink        metrics.MetricSink
	metricLabels []metrics.Label
}

// Option to pass to `NewTraverser`
type Option func(*config) error

// WithLog specifies which `slog.Handler` to use.
func WithLog(handler slog.Handler) Option {
	return func(c *config) error {
		c.logHandler = handler
		return nil
	}
}

// WithMetricSink allows you to chose how to collect the metrics emitted by
// your `Traverser`.
func WithMetricSink(ms metrics.MetricSink) Option {
	return func(c *config) error {
		if ms == nil {
			ms = &metrics.BlackholeSink{}
		}
		c.msink = ms
		return nil
	}
}

// WithMetricLabels adds static labels to all metrics produced by the
// `Traverser`.
func WithMetricLabels(labels []metrics.Label) Option {
	return func(c *config) error {
		c.metricLabels = labels
		return nil
	}
}

// WithTraverserName names the `Traverser` in logs and metrics.
// The name follows the same rules as `ValidateName`.
func WithTraverserName(name string) Option {
	return func(c *config) error {
		if !ValidateName(name) {
			return ErrNameInvalid
		}
		c.name = name
		return nil
	}
}
