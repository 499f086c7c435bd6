package aamesh

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/aamesh/internal/geom"
)

// PathElement represents a single element in a path.
type PathElement = geom.PathElement

// Path elements. Coordinates are in renderer units.
type (
	MoveTo  = geom.MoveTo
	LineTo  = geom.LineTo
	QuadTo  = geom.QuadTo
	CubicTo = geom.CubicTo
	Close   = geom.Close
)

// Path is a vector path description: a sequence of move, line, curve and
// close elements. A Path is not safe for concurrent mutation but may be read
// by any number of pipelines at once.
type Path struct {
	elements  []PathElement
	start     Point // Starting point of current subpath
	current   Point // Current point
	hasPoint  bool
	flattened bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// NewFlattenedPath creates an empty path whose producer promises to add
// only MoveTo, LineTo and Close elements. The flattener copies such a path
// through without subdividing anything.
func NewFlattenedPath() *Path {
	p := NewPath()
	p.flattened = true
	return p
}

// PathFromContours builds a flattened path from contours.
func PathFromContours(set ContourSet) *Path {
	p := NewFlattenedPath()
	for _, c := range set {
		if len(c.Points) == 0 {
			continue
		}
		p.MoveTo(c.Points[0].X, c.Points[0].Y)
		for _, pt := range c.Points[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		if c.Closed {
			p.Close()
		}
	}
	return p
}

// Flattened reports whether the path is known to contain only straight
// segments.
func (p *Path) Flattened() bool {
	return p.flattened
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasPoint = true
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	p.hasPoint = true
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
	p.hasPoint = true
	p.flattened = false
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
	p.hasPoint = true
	p.flattened = false
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasPoint = false
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
// A path has a current point after MoveTo, LineTo, or any curve operation.
func (p *Path) HasCurrentPoint() bool {
	return p.hasPoint
}

// Translate returns a copy of the path moved by v.
func (p *Path) Translate(v Point) *Path {
	return p.mapPoints(func(q Point) Point { return q.Add(v) })
}

// Transform returns a copy of the path with every point mapped through m.
// Curves stay curves; affine maps preserve Bezier control polygons.
func (p *Path) Transform(m Matrix) *Path {
	return p.mapPoints(m.TransformPoint)
}

func (p *Path) mapPoints(f func(Point) Point) *Path {
	result := &Path{
		elements:  make([]PathElement, 0, len(p.elements)),
		start:     f(p.start),
		current:   f(p.current),
		hasPoint:  p.hasPoint,
		flattened: p.flattened,
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: f(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: f(e.Point)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{Control: f(e.Control), Point: f(e.Point)})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: f(e.Control1),
				Control2: f(e.Control2),
				Point:    f(e.Point),
			})
		case Close:
			result.elements = append(result.elements, e)
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float32) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// arcJoinEpsilon is the squared distance under which an arc is taken to
// start at the current point.
const arcJoinEpsilon = 1e-6

// kappa places cubic control points for a quarter circle: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float32) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float32) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians),
// sweeping in the direction of increasing angle. Without a current point
// the arc starts a new subpath; otherwise a line joins the current point
// to the start of the arc. Non-finite angles add nothing.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float32) {
	if sweep, ok := arcSweep(angle2 - angle1); ok {
		p.arc(cx, cy, r, angle1, angle1+sweep)
	}
}

// ArcNegative is Arc sweeping in the direction of decreasing angle.
func (p *Path) ArcNegative(cx, cy, r, angle1, angle2 float32) {
	if sweep, ok := arcSweep(angle1 - angle2); ok {
		p.arc(cx, cy, r, angle1, angle1-sweep)
	}
}

// arcSweep maps an angle difference to a sweep in [0, 4*Pi]. A negative
// difference wraps into one turn; whole turns beyond the second are
// dropped.
func arcSweep(d float32) (float32, bool) {
	const twoPi = 2 * math32.Pi
	if math32.IsNaN(d) || math32.IsInf(d, 0) {
		return 0, false
	}
	switch {
	case d < 0:
		d = math32.Mod(d, twoPi)
		if d < 0 {
			d += twoPi
		}
	case d > 2*twoPi:
		d = twoPi + math32.Mod(d, twoPi)
	}
	return d, true
}

func (p *Path) arc(cx, cy, r, angle1, angle2 float32) {
	start := Pt(cx+r*math32.Cos(angle1), cy+r*math32.Sin(angle1))
	switch {
	case !p.hasPoint:
		p.MoveTo(start.X, start.Y)
	case p.current.Sub(start).LengthSquared() > arcJoinEpsilon:
		p.LineTo(start.X, start.Y)
	}

	// At most 90 degrees per cubic segment.
	const maxAngle = math32.Pi / 2
	sweep := angle2 - angle1
	n := int(math32.Ceil(math32.Abs(sweep) / maxAngle))
	if n == 0 {
		return
	}
	step := sweep / float32(n)
	for i := 0; i < n; i++ {
		a1 := angle1 + float32(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

// arcSegment adds a single cubic approximating at most a quarter turn.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float32) {
	t := math32.Tan((a2 - a1) / 2)
	alpha := math32.Sin(a2-a1) * (math32.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math32.Cos(a1), math32.Sin(a1)
	cos2, sin2 := math32.Cos(a2), math32.Sin(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// RoundedRectangle adds a rectangle with rounded corners. The radius is
// clamped to half of the smaller side.
func (p *Path) RoundedRectangle(x, y, w, h, r float32) {
	r = min(r, min(w, h)/2)
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math32.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math32.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math32.Pi/2, math32.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math32.Pi, 3*math32.Pi/2)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := *p
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	return &result
}
