package rectangle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

const (
	DimLength = "length"
	DimWidth  = "width"

	dimensionCount = 2
)

// dimensionOrder is the production order of a `Rectangle`.
var dimensionOrder = [dimensionCount]string{DimLength, DimWidth}

func isKnownDimension(name string) bool {
	return name == DimLength || name == DimWidth
}

// Dimension is one element of a production sequence: a single-entry
// mapping from a dimension name to its value.
type Dimension struct {
	Name  string
	Value int
}

// Map returns the `Dimension` as a new single-entry map.
func (d Dimension) Map() map[string]int {
	return map[string]int{d.Name: d.Value}
}

// String renders d as a dict literal, e.g. `{'length': 10}`.
func (d Dimension) String() string {
	return fmt.Sprintf("{'%s': %d}", d.Name, d.Value)
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// UnmarshalJSON accepts an object holding exactly one integer entry.
// Duplicated keys count as distinct entries, and null is not an integer.
func (d *Dimension) UnmarshalJSON(buf []byte) error {
	dec := json.NewDecoder(bytes.NewReader(buf))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected an object", ErrInvalidDimension)
	}

	var (
		name    string
		raw     json.RawMessage
		entries int
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
		}
		// Object keys are always decoded as strings.
		name = tok.(string)
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
		}
		entries++
	}
	if entries != 1 {
		return fmt.Errorf("%w: expected a single entry, got %d", ErrInvalidDimension, entries)
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: %q is null", ErrInvalidDimension, name)
	}
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrInvalidDimension, name)
	}
	d.Name = name
	d.Value = value
	return nil
}

func (d Dimension) LogValue() slog.Value {
	return slog.GroupValue(slog.Int(d.Name, d.Value))
}
