package aamesh

import "github.com/chewxy/math32"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float32) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float32) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float32) *PathBuilder {
	b.path.QuadraticTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Arc adds a circular arc; see Path.Arc.
func (b *PathBuilder) Arc(cx, cy, r, angle1, angle2 float32) *PathBuilder {
	b.path.Arc(cx, cy, r, angle1, angle2)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float32) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// RoundRect adds a rounded rectangle to the path.
func (b *PathBuilder) RoundRect(x, y, w, h, r float32) *PathBuilder {
	b.path.RoundedRectangle(x, y, w, h, r)
	return b
}

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float32) *PathBuilder {
	b.path.Circle(cx, cy, r)
	return b
}

// Ellipse adds an ellipse to the path.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float32) *PathBuilder {
	b.path.Ellipse(cx, cy, rx, ry)
	return b
}

// Polygon adds a regular polygon to the path.
func (b *PathBuilder) Polygon(cx, cy, radius float32, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}

	angleStep := 2 * math32.Pi / float32(sides)
	startAngle := -math32.Pi / 2 // Start at top

	for i := 0; i < sides; i++ {
		angle := startAngle + float32(i)*angleStep
		x := cx + radius*math32.Cos(angle)
		y := cy + radius*math32.Sin(angle)
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()
	return b
}

// Star adds a star shape to the path.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float32, points int) *PathBuilder {
	if points < 3 {
		return b
	}

	angleStep := math32.Pi / float32(points)
	startAngle := -math32.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float32(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math32.Cos(angle)
		y := cy + r*math32.Sin(angle)
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
