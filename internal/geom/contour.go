package geom

import "github.com/chewxy/math32"

// Contour is one connected polyline of a flattened path.
// A closed contour implicitly connects its last point back to its first.
type Contour struct {
	Points []Point
	Closed bool
}

// Len returns the number of stored points.
func (c Contour) Len() int {
	return len(c.Points)
}

// Clone returns a deep copy of the contour.
func (c Contour) Clone() Contour {
	pts := make([]Point, len(c.Points))
	copy(pts, c.Points)
	return Contour{Points: pts, Closed: c.Closed}
}

// Translate returns a copy of the contour moved by v.
func (c Contour) Translate(v Point) Contour {
	pts := make([]Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = p.Add(v)
	}
	return Contour{Points: pts, Closed: c.Closed}
}

// Reversed returns a copy of the contour with the point order reversed.
func (c Contour) Reversed() Contour {
	n := len(c.Points)
	pts := make([]Point, n)
	for i, p := range c.Points {
		pts[n-1-i] = p
	}
	return Contour{Points: pts, Closed: c.Closed}
}

// Length returns the total polyline length, including the closing
// segment of a closed contour.
func (c Contour) Length() float32 {
	n := len(c.Points)
	if n < 2 {
		return 0
	}
	var total float32
	for i := 1; i < n; i++ {
		total += c.Points[i].Distance(c.Points[i-1])
	}
	if c.Closed {
		total += c.Points[0].Distance(c.Points[n-1])
	}
	return total
}

// SignedArea returns the shoelace area of the contour treated as a polygon.
// Positive means the points wind counter-clockwise in a y-up frame.
// Contours with fewer than three points have zero area.
func (c Contour) SignedArea() float32 {
	return SignedArea(c.Points)
}

// Bounds returns the bounding rectangle of the contour.
func (c Contour) Bounds() Rect {
	r := EmptyRect()
	for _, p := range c.Points {
		r = r.Extend(p)
	}
	return r
}

// SignedArea returns the shoelace area of pts, accumulated in float64.
func SignedArea(pts []Point) float32 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var area float64
	for i := range n {
		p := pts[i]
		q := pts[(i+1)%n]
		area += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return float32(area / 2)
}

// ContourSet is an ordered list of contours.
// Order carries no meaning for correctness but is preserved for determinism.
type ContourSet []Contour

// Partition splits the set into closed and open contours, keeping order.
func (s ContourSet) Partition() (closed, open ContourSet) {
	for _, c := range s {
		if c.Closed {
			closed = append(closed, c)
		} else {
			open = append(open, c)
		}
	}
	return closed, open
}

// Merge returns a new set holding the contours of s followed by those of other.
func (s ContourSet) Merge(other ContourSet) ContourSet {
	out := make(ContourSet, 0, len(s)+len(other))
	out = append(out, s...)
	return append(out, other...)
}

// Translate returns a copy of the set with every contour moved by v.
func (s ContourSet) Translate(v Point) ContourSet {
	out := make(ContourSet, len(s))
	for i, c := range s {
		out[i] = c.Translate(v)
	}
	return out
}

// Clone returns a deep copy of the set.
func (s ContourSet) Clone() ContourSet {
	out := make(ContourSet, len(s))
	for i, c := range s {
		out[i] = c.Clone()
	}
	return out
}

// Bounds returns the bounding rectangle of every point in the set.
func (s ContourSet) Bounds() Rect {
	r := EmptyRect()
	for _, c := range s {
		r = r.Union(c.Bounds())
	}
	return r
}

// PointCount returns the total number of points in the set.
func (s ContourSet) PointCount() int {
	n := 0
	for _, c := range s {
		n += len(c.Points)
	}
	return n
}

// Rect is an axis-aligned bounding rectangle.
// An empty rectangle has Min greater than Max.
type Rect struct {
	Min, Max Point
}

// EmptyRect returns a rectangle that contains nothing and grows on Extend.
func EmptyRect() Rect {
	inf := math32.Inf(1)
	return Rect{Min: Point{X: inf, Y: inf}, Max: Point{X: -inf, Y: -inf}}
}

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		Min: Point{X: math32.Min(r.Min.X, p.X), Y: math32.Min(r.Min.Y, p.Y)},
		Max: Point{X: math32.Max(r.Max.X, p.X), Y: math32.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if o.Empty() {
		return r
	}
	if r.Empty() {
		return o
	}
	return r.Extend(o.Min).Extend(o.Max)
}

// Width returns the horizontal extent, or 0 for an empty rectangle.
func (r Rect) Width() float32 {
	if r.Empty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent, or 0 for an empty rectangle.
func (r Rect) Height() float32 {
	if r.Empty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}
