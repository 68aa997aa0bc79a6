package rectangle

import (
	"fmt"
	"iter"
	"log/slog"
)

// Rectangle holds two integer dimensions.
//
// The zero value is a valid 0x0 rectangle.
type Rectangle struct {
	length int
	width  int
}

// New returns a `Rectangle`. Zero and negative values are accepted.
func New(length, width int) Rectangle {
	return Rectangle{
		length: length,
		width:  width,
	}
}

func (r Rectangle) Length() int {
	return r.length
}

func (r Rectangle) Width() int {
	return r.width
}

// All returns the production sequence of r: its length, then its width.
//
// Each call returns a new sequence, and ranging over the same sequence
// again restarts from the length.
func (r Rectangle) All() iter.Seq[Dimension] {
	return func(yield func(Dimension) bool) {
		if !yield(Dimension{Name: DimLength, Value: r.length}) {
			return
		}
		yield(Dimension{Name: DimWidth, Value: r.width})
	}
}

// Entries is `All` as name/value pairs.
func (r Rectangle) Entries() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for dim := range r.All() {
			if !yield(dim.Name, dim.Value) {
				return
			}
		}
	}
}

// Iter returns a new pull-style cursor over the production sequence.
func (r Rectangle) Iter() *Iterator {
	return &Iterator{rect: r}
}

// Dimensions collects one traversal of r.
func (r Rectangle) Dimensions() []Dimension {
	out := make([]Dimension, 0, dimensionCount)
	for dim := range r.All() {
		out = append(out, dim)
	}
	return out
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(length=%d, width=%d)", r.length, r.width)
}

func (r Rectangle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int(DimLength, r.length),
		slog.Int(DimWidth, r.width),
	)
}

// Iterator is a single traversal of a `Rectangle`.
//
// Methods MUST NOT be called concurrently.
type Iterator struct {
	rect Rectangle
	pos  int
}

// Next returns the next `Dimension`, or false once both have been
// produced. An exhausted `Iterator` stays exhausted.
func (it *Iterator) Next() (Dimension, bool) {
	var dim Dimension
	switch it.pos {
	case 0:
		dim = Dimension{Name: DimLength, Value: it.rect.length}
	case 1:
		dim = Dimension{Name: DimWidth, Value: it.rect.width}
	default:
		return Dimension{}, false
	}
	it.pos++
	return dim, true
}

// FromDimensions rebuilds a `Rectangle` from a production sequence,
// typically one decoded with `pkg/flow`. The sequence must hold the length
// followed by the width and nothing else.
func FromDimensions(seq iter.Seq[Dimension]) (Rectangle, error) {
	var (
		r   Rectangle
		pos int
		err error
	)

	for dim := range seq {
		if pos >= dimensionCount {
			err = fmt.Errorf("%w: got %q after the width", ErrTrailingDimension, dim.Name)
			break
		}

		expected := dimensionOrder[pos]
		if dim.Name != expected {
			if !isKnownDimension(dim.Name) {
				err = fmt.Errorf("%w: %q", ErrUnknownDimension, dim.Name)
			} else {
				err = fmt.Errorf("%w: expected %q at position %d, got %q", ErrDimensionOrder, expected, pos, dim.Name)
			}
			break
		}

		switch dim.Name {
		case DimLength:
			r.length = dim.Value
		case DimWidth:
			r.width = dim.Value
		}
		pos++
	}

	if err != nil {
		return Rectangle{}, err
	}
	if pos < dimensionCount {
		return Rectangle{}, fmt.Errorf("%w: %q", ErrMissingDimension, dimensionOrder[pos])
	}
	return r, nil
}
