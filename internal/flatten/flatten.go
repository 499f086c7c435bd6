// Package flatten converts path descriptions with curves into polyline
// contours.
//
// Flattening happens in two steps. Events walks the path elements and
// produces a Begin / Line / End stream in which every curve has already been
// subdivided into straight segments. Flatten then assembles that stream into
// contours, one per Begin/End pair, dropping duplicate points and degenerate
// contours on the way.
package flatten

import (
	"iter"

	"github.com/chewxy/math32"

	"github.com/gogpu/aamesh/internal/geom"
)

// DefaultTolerance is the maximum distance between a curve and its
// polyline approximation, in path-space units.
const DefaultTolerance float32 = 0.05

// maxDepth bounds curve subdivision so that NaN or enormous control points
// still terminate. 2^16 segments per curve is far beyond any sane tolerance.
const maxDepth = 16

// EventKind identifies a flattening event.
type EventKind int

const (
	// EventBegin starts a new contour at To.
	EventBegin EventKind = iota
	// EventLine is a straight segment From -> To.
	EventLine
	// EventEnd finishes the current contour; Closed tells whether the
	// subpath was explicitly closed.
	EventEnd
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventLine:
		return "Line"
	case EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Event is one step of a flattened path walk.
type Event struct {
	Kind   EventKind
	From   geom.Point
	To     geom.Point
	Closed bool
}

// Events returns the flattened event stream of elements.
//
// When alreadyFlattened is true the elements are expected to contain only
// MoveTo, LineTo and Close; a curve element found anyway is reduced to its
// chord. Otherwise quadratic and cubic curves are subdivided until the
// polyline stays within tolerance of the curve.
//
// A drawing element without a preceding MoveTo starts a subpath at its own
// end point. Drawing after Close without a MoveTo starts a new subpath at
// the start of the closed one.
func Events(elements []geom.PathElement, alreadyFlattened bool, tolerance float32) iter.Seq[Event] {
	if tolerance <= 0 || math32.IsNaN(tolerance) {
		tolerance = DefaultTolerance
	}
	return func(yield func(Event) bool) {
		w := walker{yield: yield, tolerance: tolerance, flat: alreadyFlattened}
		for _, elem := range elements {
			if !w.step(elem) {
				return
			}
		}
		if w.open {
			w.yield(Event{Kind: EventEnd, From: w.current, To: w.start})
		}
	}
}

// walker keeps the subpath state while Events walks the elements.
type walker struct {
	yield     func(Event) bool
	tolerance float32
	flat      bool

	open    bool // a Begin has been emitted without its End
	hasCur  bool // current point is defined
	start   geom.Point
	current geom.Point
}

func (w *walker) step(elem geom.PathElement) bool {
	switch e := elem.(type) {
	case geom.MoveTo:
		if !w.end(false) {
			return false
		}
		w.start, w.current, w.hasCur = e.Point, e.Point, true
		return true

	case geom.LineTo:
		if !w.begin(e.Point) {
			return false
		}
		return w.line(e.Point)

	case geom.QuadTo:
		if !w.begin(e.Point) {
			return false
		}
		if w.flat {
			return w.line(e.Point)
		}
		return w.quad(w.current, e.Control, e.Point, 0)

	case geom.CubicTo:
		if !w.begin(e.Point) {
			return false
		}
		if w.flat {
			return w.line(e.Point)
		}
		return w.cubic(w.current, e.Control1, e.Control2, e.Point, 0)

	case geom.Close:
		if !w.open {
			return true
		}
		ok := w.end(true)
		w.current = w.start
		return ok
	}
	return true
}

// begin emits a Begin event if no contour is open. Without a current point
// the subpath starts at fallback.
func (w *walker) begin(fallback geom.Point) bool {
	if w.open {
		return true
	}
	if !w.hasCur {
		w.start, w.current, w.hasCur = fallback, fallback, true
	}
	w.start = w.current
	w.open = true
	return w.yield(Event{Kind: EventBegin, To: w.current})
}

func (w *walker) end(closed bool) bool {
	if !w.open {
		return true
	}
	w.open = false
	return w.yield(Event{Kind: EventEnd, From: w.current, To: w.start, Closed: closed})
}

func (w *walker) line(to geom.Point) bool {
	from := w.current
	w.current = to
	return w.yield(Event{Kind: EventLine, From: from, To: to})
}

// quad recursively subdivides a quadratic Bezier curve.
func (w *walker) quad(p0, p1, p2 geom.Point, depth int) bool {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < w.tolerance {
		return w.line(p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	return w.quad(p0, q0, q2, depth+1) && w.quad(q2, q1, p2, depth+1)
}

// cubic recursively subdivides a cubic Bezier curve using de Casteljau's
// algorithm.
func (w *walker) cubic(p0, p1, p2, p3 geom.Point, depth int) bool {
	d := math32.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxDepth || d < w.tolerance {
		return w.line(p3)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	return w.cubic(p0, q0, r0, s, depth+1) && w.cubic(s, r1, q2, p3, depth+1)
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b geom.Point) float32 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq < 1e-12 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
