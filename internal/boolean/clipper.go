package boolean

import (
	"fmt"

	"github.com/chewxy/math32"
	clipper "github.com/ctessum/go.clipper"

	"github.com/gogpu/aamesh/internal/geom"
)

// ClipperSolver implements Solver on top of the integer Vatti clipper.
//
// Coordinates are multiplied by Scale and rounded before they reach the
// clipper, so results are exact on a 1/Scale grid. A ClipperSolver holds no
// mutable state; a fresh clipper is created for every call.
type ClipperSolver struct {
	// Scale converts path-space units to clipper integers.
	Scale float32

	// MiterLimit is the miter ratio used by JoinMiter offsets.
	MiterLimit float32

	// ArcTolerance is the maximum deviation of round joins and caps from
	// the true arc, in path-space units.
	ArcTolerance float32

	// SimplifyEpsilon is the distance below which vertices of an offset
	// result are merged. Zero disables simplification.
	SimplifyEpsilon float32
}

// NewClipperSolver returns a solver with the default engine constants and
// the given arc tolerance.
func NewClipperSolver(arcTolerance float32) *ClipperSolver {
	return &ClipperSolver{
		Scale:           DefaultScale,
		MiterLimit:      DefaultMiterLimit,
		ArcTolerance:    arcTolerance,
		SimplifyEpsilon: DefaultSimplifyEpsilon,
	}
}

func (s *ClipperSolver) scale() float32 {
	if s.Scale > 0 {
		return s.Scale
	}
	return DefaultScale
}

// guard turns a panic inside the clipper into ErrBooleanOpFailed.
func guard(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s: %v", ErrBooleanOpFailed, op, r)
	}
}

// Inflate implements Solver.
func (s *ClipperSolver) Inflate(set geom.ContourSet, delta float32, join JoinType, end EndType) (geom.ContourSet, error) {
	return s.offset("inflate", set, delta, join, end, true)
}

// InflateRegion implements Solver.
func (s *ClipperSolver) InflateRegion(region geom.ContourSet, delta float32, join JoinType) (geom.ContourSet, error) {
	closed, _ := region.Partition()
	return s.offset("inflate region", closed, delta, join, EndPolygon, false)
}

func (s *ClipperSolver) offset(op string, set geom.ContourSet, delta float32, join JoinType, end EndType, normalize bool) (out geom.ContourSet, err error) {
	defer guard(op, &err)

	if len(set) == 0 {
		return nil, nil
	}

	sc := s.scale()
	co := clipper.NewClipperOffset()
	if s.MiterLimit > 0 {
		co.MiterLimit = float64(s.MiterLimit)
	}
	if s.ArcTolerance > 0 {
		co.ArcTolerance = float64(s.ArcTolerance * sc)
	}

	jt := clipperJoin(join)
	for _, c := range set {
		et := clipperEnd(end)
		if c.Closed {
			if normalize {
				c = NormalizeWinding(c)
			}
			et = clipper.EtClosedPolygon
		} else if end == EndPolygon {
			et = clipper.EtOpenButt
		}
		co.AddPath(s.toPath(c), jt, et)
	}

	solution := co.Execute(float64(delta * sc))
	if s.SimplifyEpsilon > 0 {
		solution = clipper.NewClipper(clipper.IoNone).CleanPolygons(solution, float64(s.SimplifyEpsilon*sc))
	}
	return s.fromPaths(solution, true), nil
}

// Union implements Solver.
func (s *ClipperSolver) Union(a, b geom.ContourSet) (geom.ContourSet, error) {
	return s.execute("union", clipper.CtUnion, a, b)
}

// Difference implements Solver.
func (s *ClipperSolver) Difference(a, b geom.ContourSet) (geom.ContourSet, error) {
	return s.execute("difference", clipper.CtDifference, a, b)
}

// Intersect implements Solver.
func (s *ClipperSolver) Intersect(a, b geom.ContourSet) (geom.ContourSet, error) {
	return s.execute("intersect", clipper.CtIntersection, a, b)
}

// IntersectOpen implements Solver.
func (s *ClipperSolver) IntersectOpen(open, clip geom.ContourSet) (geom.ContourSet, error) {
	return s.executeOpen("intersect open", clipper.CtIntersection, open, clip)
}

// DifferenceOpen implements Solver.
func (s *ClipperSolver) DifferenceOpen(open, cut geom.ContourSet) (geom.ContourSet, error) {
	return s.executeOpen("difference open", clipper.CtDifference, open, cut)
}

func (s *ClipperSolver) execute(op string, ct clipper.ClipType, subject, clip geom.ContourSet) (out geom.ContourSet, err error) {
	defer guard(op, &err)

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(s.toPolygons(subject), clipper.PtSubject, true)
	c.AddPaths(s.toPolygons(clip), clipper.PtClip, true)

	solution, ok := c.Execute1(ct, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBooleanOpFailed, op)
	}
	return s.fromPaths(solution, true), nil
}

func (s *ClipperSolver) executeOpen(op string, ct clipper.ClipType, open, clip geom.ContourSet) (out geom.ContourSet, err error) {
	defer guard(op, &err)

	lines := make(clipper.Paths, 0, len(open))
	for _, o := range open {
		if len(o.Points) >= 2 {
			lines = append(lines, s.toPath(o))
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(lines, clipper.PtSubject, false)
	c.AddPaths(s.toPolygons(clip), clipper.PtClip, true)

	tree, ok := c.Execute2(ct, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBooleanOpFailed, op)
	}
	return s.fromPaths(c.OpenPathsFromPolyTree(tree), false), nil
}

// toPolygons converts the contours usable as closed polygons.
func (s *ClipperSolver) toPolygons(set geom.ContourSet) clipper.Paths {
	paths := make(clipper.Paths, 0, len(set))
	for _, c := range set {
		if len(c.Points) >= 3 {
			paths = append(paths, s.toPath(c))
		}
	}
	return paths
}

func (s *ClipperSolver) toPath(c geom.Contour) clipper.Path {
	sc := s.scale()
	path := make(clipper.Path, len(c.Points))
	for i, p := range c.Points {
		path[i] = &clipper.IntPoint{
			X: clipper.CInt(math32.Round(p.X * sc)),
			Y: clipper.CInt(math32.Round(p.Y * sc)),
		}
	}
	return path
}

// fromPaths converts clipper output back to contours. Closed results with
// fewer than three points and open results with fewer than two are dropped.
func (s *ClipperSolver) fromPaths(paths clipper.Paths, closed bool) geom.ContourSet {
	minPoints := 2
	if closed {
		minPoints = 3
	}

	inv := 1 / s.scale()
	out := make(geom.ContourSet, 0, len(paths))
	for _, path := range paths {
		if len(path) < minPoints {
			continue
		}
		pts := make([]geom.Point, len(path))
		for i, ip := range path {
			pts[i] = geom.Point{X: float32(ip.X) * inv, Y: float32(ip.Y) * inv}
		}
		out = append(out, geom.Contour{Points: pts, Closed: closed})
	}
	return out
}

func clipperJoin(j JoinType) clipper.JoinType {
	switch j {
	case JoinRound:
		return clipper.JtRound
	case JoinBevel:
		return clipper.JtSquare
	default:
		return clipper.JtMiter
	}
}

func clipperEnd(e EndType) clipper.EndType {
	switch e {
	case EndButt:
		return clipper.EtOpenButt
	case EndRound:
		return clipper.EtOpenRound
	case EndSquare:
		return clipper.EtOpenSquare
	default:
		return clipper.EtClosedPolygon
	}
}
