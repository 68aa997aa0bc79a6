package rectangle

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/hashicorp/go-metrics"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSink struct {
	metrics.BlackholeSink
	m mock.Mock
}

func (s *MockSink) IncrCounterWithLabels(key []string, val float32, labels []metrics.Label) {
	s.m.Called(key, val, labels)
}

func TestTraverser_Walk(t *testing.T) {
	sink := &MockSink{}
	static := metrics.Label{Name: "env", Value: "test"}
	tr, err := NewTraverser(
		WithMetricSink(sink),
		WithMetricLabels([]metrics.Label{static}),
		WithTraverserName("walker-1"),
	)
	require.NoError(t, err)
	require.Equal(t, "walker-1", tr.Name())

	base := []metrics.Label{static, LabelTraverser.M("walker-1")}
	sink.m.On("IncrCounterWithLabels", MetricTraversalCount, float32(1), base).Return()
	sink.m.On("IncrCounterWithLabels", MetricDimensionYieldedCount, float32(1),
		append(slices.Clone(base), LabelDimension.M(DimLength))).Return()
	sink.m.On("IncrCounterWithLabels", MetricDimensionYieldedCount, float32(1),
		append(slices.Clone(base), LabelDimension.M(DimWidth))).Return()

	r := New(10, 5)
	require.Equal(t, r.Dimensions(), slices.Collect(tr.Walk(r)))

	sink.m.AssertExpectations(t)
	sink.m.AssertNumberOfCalls(t, "IncrCounterWithLabels", 3)
}

func TestTraverser_WalkAborted(t *testing.T) {
	sink := &MockSink{}
	tr, err := NewTraverser(WithMetricSink(sink))
	require.NoError(t, err)

	base := []metrics.Label{LabelTraverser.M(DefaultTraverserName)}
	sink.m.On("IncrCounterWithLabels", MetricTraversalCount, float32(1), base).Return()
	sink.m.On("IncrCounterWithLabels", MetricDimensionYieldedCount, float32(1),
		append(slices.Clone(base), LabelDimension.M(DimLength))).Return()
	sink.m.On("IncrCounterWithLabels", MetricTraversalAbortedCount, float32(1), base).Return()

	for dim := range tr.Walk(New(3, 4)) {
		require.Equal(t, Dimension{Name: DimLength, Value: 3}, dim)
		break
	}

	sink.m.AssertExpectations(t)
	sink.m.AssertNumberOfCalls(t, "IncrCounterWithLabels", 3)
}

func TestTraverser_Log(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	tr, err := NewTraverser(WithLog(handler), WithMetricSink(nil))
	require.NoError(t, err)

	seq := tr.Walk(New(10, 5))
	require.Len(t, slices.Collect(seq), 2)
	require.Len(t, slices.Collect(seq), 2, "walked sequences are restartable")

	out := buf.String()
	require.Equal(t, 2, strings.Count(out, `msg="traversal completed"`))
	require.Contains(t, out, "traverser=default")
	require.Contains(t, out, "rectangle.length=10")
	require.Contains(t, out, "rectangle.width=5")
	require.Contains(t, out, "yielded=2")
}

func TestTraverser_InvalidName(t *testing.T) {
	for _, name := range []string{"", "with space", "slash/name", strings.Repeat("a", MaxNameLength+1)} {
		_, err := NewTraverser(WithTraverserName(name))
		require.ErrorIs(t, err, ErrInvalidCfg, "name %q", name)
		require.ErrorIs(t, err, ErrNameInvalid, "name %q", name)
	}

	require.True(t, ValidateName("node-1.eu"))
}
