package boolean

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/aamesh/internal/geom"
)

// toFixed rounds a point to 26.6 fixed point.
// Coordinates must stay within about ±3.3e7 units.
func toFixed(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math32.Round(p.X * 64)),
		Y: fixed.Int26_6(math32.Round(p.Y * 64)),
	}
}

// SignedAreaFixed returns twice the shoelace area of pts in 26.6 squared
// units. The integer sum is exact, so the sign is reliable even for thin
// or nearly degenerate contours.
func SignedAreaFixed(pts []geom.Point) int64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var area int64
	prev := toFixed(pts[n-1])
	for _, pt := range pts {
		cur := toFixed(pt)
		area += int64(prev.X)*int64(cur.Y) - int64(cur.X)*int64(prev.Y)
		prev = cur
	}
	return area
}

// NormalizeWinding returns c with its points reversed when its signed area
// is negative, so that a positive offset always grows it. Open contours and
// positively wound contours are returned unchanged.
func NormalizeWinding(c geom.Contour) geom.Contour {
	if !c.Closed {
		return c
	}
	if SignedAreaFixed(c.Points) < 0 {
		return c.Reversed()
	}
	return c
}
