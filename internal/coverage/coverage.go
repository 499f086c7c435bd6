// Package coverage builds anti-aliasing coverage meshes from polygon
// contours.
//
// Every boundary vertex becomes a pair: the vertex itself with coverage 1
// and an extruded copy one feather radius outside the filled region with
// coverage 0. Consecutive pairs are joined into a closed quad strip, so a
// rasterizer that linearly interpolates coverage draws a one-pixel analytic
// ramp along every edge.
//
// Extruded points sit where the two edge lines, offset by the feather
// radius, intersect. Sharp corners are clamped to MiterLimitRatio radii and
// parallel edges fall back to the averaged normal.
package coverage

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/aamesh/internal/geom"
)

const (
	// MiterLimitRatio bounds the extrusion distance in feather radii.
	MiterLimitRatio = 4

	// parallelEpsilon is the cross product below which two edge
	// directions are treated as parallel.
	parallelEpsilon = 1e-6
)

// Vertex is one mesh vertex. Coverage is exactly 0 or 1.
type Vertex struct {
	Position geom.Point
	Coverage float32
}

// Strip describes the vertices and indices produced for one contour.
type Strip struct {
	// FirstVertex is the index of the strip's first vertex.
	FirstVertex uint32
	// FirstIndex is the offset of the strip's first index.
	FirstIndex int
	// Points is the number of contour points; the strip holds 2*Points
	// vertices and 6*Points indices.
	Points int
	// Outer reports a positively wound contour. Holes come out of the
	// boolean engine wound negatively.
	Outer bool
}

// Geometry is the raw output of Build.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
	Strips   []Strip
}

// Build creates the coverage strips for every contour of set with at least
// three points; smaller contours are skipped. aaRadius is the feather
// width in path-space units, normally 1/scaleFactor.
func Build(set geom.ContourSet, aaRadius float32) Geometry {
	var g Geometry

	n := 0
	for _, c := range set {
		if len(c.Points) >= 3 {
			n += len(c.Points)
		}
	}
	if n == 0 {
		return g
	}
	g.Vertices = make([]Vertex, 0, 2*n)
	g.Indices = make([]uint32, 0, 6*n)

	miterLimit := MiterLimitRatio * aaRadius
	for _, c := range set {
		pts := c.Points
		if len(pts) < 3 {
			continue
		}
		g.Strips = append(g.Strips, Strip{
			FirstVertex: uint32(len(g.Vertices)),
			FirstIndex:  len(g.Indices),
			Points:      len(pts),
			Outer:       geom.SignedArea(pts) > 0,
		})
		g.appendStrip(pts, aaRadius, miterLimit)
	}
	return g
}

func (g *Geometry) appendStrip(pts []geom.Point, aaRadius, miterLimit float32) {
	n := len(pts)
	base := uint32(len(g.Vertices))

	for i := range n {
		p0 := pts[(i+n-1)%n]
		p1 := pts[i]
		p2 := pts[(i+1)%n]

		g.Vertices = append(g.Vertices,
			Vertex{Position: p1, Coverage: 1},
			Vertex{Position: Extrude(p0, p1, p2, aaRadius, miterLimit), Coverage: 0},
		)
	}

	for i := range uint32(n) {
		inner := base + 2*i
		outer := inner + 1
		next := base + 2*((i+1)%uint32(n))
		nextOuter := next + 1

		g.Indices = append(g.Indices,
			inner, outer, nextOuter,
			inner, nextOuter, next,
		)
	}
}

// Extrude returns the coverage-0 point for vertex p1 with predecessor p0
// and successor p2.
func Extrude(p0, p1, p2 geom.Point, aaRadius, miterLimit float32) geom.Point {
	ePrev := p1.Sub(p0).Normalize()
	eNext := p2.Sub(p1).Normalize()

	nPrev := ePrev.Rot90CW().Normalize()
	nNext := eNext.Rot90CW().Normalize()

	if ip, ok := lineIntersection(p1.Add(nPrev.Mul(aaRadius)), ePrev, p1.Add(nNext.Mul(aaRadius)), eNext); ok {
		v := ip.Sub(p1)
		if v.Length() > miterLimit {
			return p1.Add(v.Normalize().Mul(miterLimit))
		}
		return ip
	}

	avg := nPrev.Add(nNext).Normalize()
	return p1.Add(avg.Mul(aaRadius))
}

// lineIntersection intersects the line through p with direction r and the
// line through q with direction s.
func lineIntersection(p, r, q, s geom.Point) (geom.Point, bool) {
	rxs := r.Cross(s)
	if math32.Abs(rxs) < parallelEpsilon {
		return geom.Point{}, false
	}
	t := q.Sub(p).Cross(s) / rxs
	return p.Add(r.Mul(t)), true
}
