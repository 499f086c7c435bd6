// Package boolean is the polygon boolean and offset engine of the coverage
// pipeline.
//
// All operations go through the narrow Solver interface so that the exact
// arithmetic backend can be swapped. ClipperSolver, backed by the Vatti
// clipper in github.com/ctessum/go.clipper, is the default.
//
// Closed contours taking part in boolean operations follow the nonzero fill
// rule. Results wind positively for outer boundaries and negatively for
// holes, which the coverage mesh builder relies on to extrude away from the
// filled side.
package boolean

import (
	"errors"

	"github.com/gogpu/aamesh/internal/geom"
)

// ErrBooleanOpFailed reports that the solver could not produce a valid
// result, typically for malformed or out-of-range input. Callers are
// expected to fall back to the unclipped input.
var ErrBooleanOpFailed = errors.New("boolean: polygon operation failed")

// Default engine constants.
const (
	// DefaultMiterLimit is the miter ratio at which offset corners are
	// squared off.
	DefaultMiterLimit = 4.0

	// DefaultSimplifyEpsilon is the distance below which vertices of an
	// offset result are merged.
	DefaultSimplifyEpsilon = 0.05

	// DefaultScale converts path-space units to solver integers.
	// A power of two keeps the float32 round trip exact.
	DefaultScale = 1024
)

// JoinType selects the corner shape of an offset.
type JoinType int

const (
	// JoinMiter extends edges to a sharp corner, squared off beyond the
	// miter limit.
	JoinMiter JoinType = iota
	// JoinRound rounds corners with arcs.
	JoinRound
	// JoinBevel cuts corners off at the offset distance.
	JoinBevel
)

// EndType selects how the ends of an offset contour are finished.
type EndType int

const (
	// EndPolygon treats the contour as a closed polygon.
	EndPolygon EndType = iota
	// EndButt ends an open contour flush with its end points.
	EndButt
	// EndRound ends an open contour with half circles.
	EndRound
	// EndSquare ends an open contour with half squares.
	EndSquare
)

// Solver is the boolean capability the pipeline depends on.
//
// Implementations must be safe for concurrent use; every method works on
// its own inputs and returns fresh contours.
type Solver interface {
	// Inflate offsets every contour of set by delta (negative shrinks).
	// Closed contours are normalized to positive winding first.
	Inflate(set geom.ContourSet, delta float32, join JoinType, end EndType) (geom.ContourSet, error)

	// InflateRegion offsets a nonzero region as a whole. Outer contours
	// must wind positively and holes negatively; orientation is kept, so
	// a negative delta shrinks outers and grows holes. Open contours are
	// ignored.
	InflateRegion(region geom.ContourSet, delta float32, join JoinType) (geom.ContourSet, error)

	// Union returns the nonzero union of the closed contours of a and b.
	Union(a, b geom.ContourSet) (geom.ContourSet, error)

	// Difference returns the nonzero region of a not covered by b.
	Difference(a, b geom.ContourSet) (geom.ContourSet, error)

	// Intersect returns the nonzero region covered by both a and b.
	Intersect(a, b geom.ContourSet) (geom.ContourSet, error)

	// IntersectOpen returns the parts of the open polylines lying inside
	// the closed region clip.
	IntersectOpen(open, clip geom.ContourSet) (geom.ContourSet, error)

	// DifferenceOpen returns the parts of the open polylines lying outside
	// the closed region cut.
	DifferenceOpen(open, cut geom.ContourSet) (geom.ContourSet, error)
}
