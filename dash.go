package aamesh

import "github.com/gogpu/aamesh/internal/dash"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths: entries at
// even indices are drawn, entries at odd indices are skipped. An odd-length
// pattern is used as given, so its parity flips on every cycle.
type Dash struct {
	// Array contains alternating dash/gap lengths. Every length must be
	// strictly positive.
	Array []float32

	// Offset is the index of the pattern entry the stroke begins with. It
	// is taken modulo len(Array); negative values count from the end.
	Offset int
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//
// Returns nil if no lengths are provided. The lengths are not checked
// here; Validate reports bad patterns.
func NewDash(lengths ...float32) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	array := make([]float32, len(lengths))
	copy(array, lengths)
	return &Dash{Array: array}
}

// WithOffset returns a new Dash starting at the given pattern index.
func (d *Dash) WithOffset(offset int) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  d.Array,
		Offset: offset,
	}
}

// Validate returns ErrInvalidDashPattern for an empty pattern or one with
// a non-positive or non-finite length.
func (d *Dash) Validate() error {
	if d == nil {
		return ErrInvalidDashPattern
	}
	return dash.Validate(d.Array)
}

// PatternLength returns the total length of one pass over Array.
func (d *Dash) PatternLength() float32 {
	if d == nil {
		return 0
	}
	return dash.PatternLength(d.Array)
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d != nil && len(d.Array) > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}

	arrayCopy := make([]float32, len(d.Array))
	copy(arrayCopy, d.Array)

	return &Dash{
		Array:  arrayCopy,
		Offset: d.Offset,
	}
}

// Scale returns a new Dash with all lengths multiplied by the given factor.
// The start index is unchanged. Non-positive factors return d unchanged.
func (d *Dash) Scale(factor float32) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaledArray := make([]float32, len(d.Array))
	for i, l := range d.Array {
		scaledArray[i] = l * factor
	}

	return &Dash{
		Array:  scaledArray,
		Offset: d.Offset,
	}
}
