package aamesh

import "github.com/gogpu/aamesh/internal/geom"

// Contour is one flattened subpath: at least two points after duplicate
// removal, with Closed marking an implicit segment from the last point back
// to the first.
type Contour = geom.Contour

// ContourSet is an ordered list of contours. Every pipeline stage returns
// a fresh set and preserves input order.
type ContourSet = geom.ContourSet

// Rect is an axis-aligned bounding box.
type Rect = geom.Rect

// SignedArea returns the shoelace area of a closed polygon. Outer contours
// are positive and holes negative.
func SignedArea(pts []Point) float32 {
	return geom.SignedArea(pts)
}
