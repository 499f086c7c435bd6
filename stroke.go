package aamesh

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in renderer units. Default: 1.0
	Width float32

	// Cap is the shape of open contour endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// DefaultStroke returns a Stroke with default settings.
// This creates a solid 1-unit line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 1.0,
		Cap:   LineCapButt,
		Join:  LineJoinMiter,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float32) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	s.Dash = dash.Clone()
	return s
}

// WithDashPattern returns a copy of the Stroke with a dash pattern
// created from the given lengths.
//
// Example:
//
//	stroke.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s Stroke) WithDashPattern(lengths ...float32) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset returns a copy of the Stroke whose dashing starts at the
// given pattern index. If there is no dash pattern, this has no effect.
func (s Stroke) WithDashOffset(offset int) Stroke {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	s.Dash = s.Dash.Clone()
	return s
}

// Thin returns a thin stroke (0.5 units).
func Thin() Stroke {
	return DefaultStroke().WithWidth(0.5)
}

// Thick returns a thick stroke (3 units).
func Thick() Stroke {
	return DefaultStroke().WithWidth(3.0)
}

// RoundStroke returns a stroke with round caps and joins.
func RoundStroke() Stroke {
	return DefaultStroke().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// SquareStroke returns a stroke with square caps.
func SquareStroke() Stroke {
	return DefaultStroke().WithCap(LineCapSquare)
}

// DashedStroke returns a dashed stroke with the given pattern.
func DashedStroke(lengths ...float32) Stroke {
	return DefaultStroke().WithDashPattern(lengths...)
}
