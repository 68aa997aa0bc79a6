package rectangle

import (
	"fmt"
	"iter"
	"log/slog"
	"regexp"
	"slices"

	"github.com/hashicorp/go-metrics"
)

const (
	DefaultTraverserName = "default"
	MaxNameLength        = 128
)

var invalidName = regexp.MustCompile(`[^A-Za-z0-9\-\.]+`)

// ValidateName reports whether name is non-empty, at most
// `MaxNameLength` long and only made of alphanum, dashes and dots.
func ValidateName(name string) bool {
	return name != "" && !invalidName.MatchString(name) && len(name) <= MaxNameLength
}

// Traverser walks rectangles while emitting logs and metrics.
//
// A Traverser is safe for concurrent use.
type Traverser struct {
	name   string
	logger *slog.Logger
	msink  metrics.MetricSink
	labels []metrics.Label
}

// NewTraverser creates a `Traverser` customised by opts.
func NewTraverser(opts ...Option) (*Traverser, error) {
	cfg := config{
		name: DefaultTraverserName,
	}

	for _, opt := range opts {
		err := opt(&cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCfg, err)
		}
	}

	tr := &Traverser{name: cfg.name}

	// Logging implementation.
	if cfg.logHandler != nil {
		tr.logger = slog.New(cfg.logHandler)
	} else {
		tr.logger = slog.Default()
	}
	tr.logger = tr.logger.With(LabelTraverser.L(cfg.name))

	// Metrics implementation.
	if cfg.msink == nil {
		tr.msink = metrics.Default()
	} else {
		tr.msink = cfg.msink
	}
	tr.labels = append(slices.Clone(cfg.metricLabels), LabelTraverser.M(cfg.name))

	return tr, nil
}

func (tr *Traverser) Name() string {
	return tr.name
}

// Walk returns the production sequence of r, like `Rectangle.All`,
// instrumenting every traversal of it.
func (tr *Traverser) Walk(r Rectangle) iter.Seq[Dimension] {
	return func(yield func(Dimension) bool) {
		tr.msink.IncrCounterWithLabels(MetricTraversalCount, 1, tr.labels)

		yielded := 0
		for dim := range r.All() {
			tr.msink.IncrCounterWithLabels(
				MetricDimensionYieldedCount,
				1,
				append(slices.Clone(tr.labels), LabelDimension.M(dim.Name)),
			)
			yielded++
			if !yield(dim) {
				tr.msink.IncrCounterWithLabels(MetricTraversalAbortedCount, 1, tr.labels)
				tr.logger.Debug(
					"traversal stopped by consumer",
					LabelRectangle.L(r),
					LabelYielded.L(yielded),
				)
				return
			}
		}

		tr.logger.Debug(
			"traversal completed",
			LabelRectangle.L(r),
			LabelYielded.L(yielded),
		)
	}
}
