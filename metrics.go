package rectangle

import (
	"log/slog"

	"github.com/hashicorp/go-metrics"
)

var (
	// MetricTraversalCount counts traversals started by a `Traverser`.
	MetricTraversalCount        = []string{"rectangle", "traversal", "count"}
	MetricTraversalAbortedCount = []string{"rectangle", "traversal", "aborted", "count"}
	MetricDimensionYieldedCount = []string{"rectangle", "dimension", "yielded", "count"}
)

type TelemetryLabel string

var (
	LabelDimension TelemetryLabel = "dimension"
	LabelTraverser TelemetryLabel = "traverser"
	LabelRectangle TelemetryLabel = "rectangle"
	LabelYielded   TelemetryLabel = "yielded"
)

func (lab TelemetryLabel) M(val string) metrics.Label {
	return metrics.Label{Name: string(lab), Value: val}
}

func (lab TelemetryLabel) L(val any) slog.Attr {
	return slog.Attr{
		Key:   string(lab),
		Value: slog.AnyValue(val),
	}
}
