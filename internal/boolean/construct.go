package boolean

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/aamesh/internal/geom"
)

// HalfWidth returns the offset distance used to stroke a line of the given
// width. The stroke is narrowed by one feather radius on each side because
// the coverage mesh adds that feather back on both ring edges. The result
// never drops below half a feather radius.
func HalfWidth(width, aaRadius float32) float32 {
	return math32.Max(width-2*aaRadius, aaRadius) / 2
}

// StrokeOutline builds the solid part of a stroke around c.
//
// A closed contour yields a ring: inflate(+h) minus inflate(-h). An open
// contour yields inflate(+h) finished with the cap end style. When the ring
// difference fails, the outer offset is returned together with the error.
func StrokeOutline(s Solver, c geom.Contour, width, aaRadius float32, join JoinType, end EndType) (geom.ContourSet, error) {
	h := HalfWidth(width, aaRadius)
	in := geom.ContourSet{NormalizeWinding(c)}

	if !c.Closed {
		if end == EndPolygon {
			end = EndButt
		}
		return s.Inflate(in, h, join, end)
	}

	outer, err := s.Inflate(in, h, join, EndPolygon)
	if err != nil {
		return nil, err
	}
	inner, err := s.Inflate(in, -h, join, EndPolygon)
	if err != nil {
		return outer, err
	}
	if len(inner) == 0 {
		return outer, nil
	}
	ring, err := s.Difference(outer, inner)
	if err != nil {
		return outer, err
	}
	return ring, nil
}

// FillInset shrinks the region filled by the closed contours of set by one
// feather radius. Overlaps are resolved with the nonzero rule first, so
// holes survive and grow by the radius. The coverage mesh re-adds the
// radius as its outer ramp, so the combined shape reproduces the input
// boundary. Open contours cannot be filled and are ignored.
func FillInset(s Solver, set geom.ContourSet, aaRadius float32) (geom.ContourSet, error) {
	closed, _ := set.Partition()
	if len(closed) == 0 {
		return nil, nil
	}
	region, err := s.Union(closed, nil)
	if err != nil {
		return nil, err
	}
	return s.InflateRegion(region, -aaRadius, JoinMiter)
}

// ClipReport counts the boolean operations that failed during ClipByPath
// or ClipRegion.
type ClipReport struct {
	Failures int
	LastErr  error
}

func (r *ClipReport) fail(err error) {
	r.Failures++
	r.LastErr = err
}

// ClipByPath restricts every subject contour to the region of clip and then
// removes the region of diff. A nil clip leaves the subject unrestricted and
// a nil diff subtracts nothing; a non-nil but empty clip removes everything.
//
// Closed subjects are clipped as polygons, open subjects as polylines. Each
// contour is processed on its own so that a failing operation only falls
// back to that contour's unclipped input.
func ClipByPath(s Solver, subject, clip, diff geom.ContourSet) (geom.ContourSet, ClipReport) {
	var report ClipReport
	if clip == nil && diff == nil {
		return subject, report
	}

	out := make(geom.ContourSet, 0, len(subject))
	for _, c := range subject {
		res := geom.ContourSet{c}

		if clip != nil {
			var r geom.ContourSet
			var err error
			if c.Closed {
				r, err = s.Intersect(res, clip)
			} else {
				r, err = s.IntersectOpen(res, clip)
			}
			if err != nil {
				report.fail(err)
				out = append(out, c)
				continue
			}
			res = r
		}

		if diff != nil && len(res) > 0 {
			var r geom.ContourSet
			var err error
			if c.Closed {
				r, err = s.Difference(res, diff)
			} else {
				r, err = s.DifferenceOpen(res, diff)
			}
			if err != nil {
				report.fail(err)
				out = append(out, c)
				continue
			}
			res = r
		}

		out = append(out, res...)
	}
	return out, report
}

// ClipRegion restricts the nonzero region of the closed contours of
// subject to clip and then removes diff, treating the contours as one
// region so holes stay holes. Nil clip and diff are skipped. On failure the
// whole subject is returned unclipped. Open contours are dropped.
func ClipRegion(s Solver, subject, clip, diff geom.ContourSet) (geom.ContourSet, ClipReport) {
	var report ClipReport
	region, _ := subject.Partition()
	if clip == nil && diff == nil {
		return region, report
	}

	out := region
	if clip != nil {
		r, err := s.Intersect(out, clip)
		if err != nil {
			report.fail(err)
			return region, report
		}
		out = r
	}
	if diff != nil && len(out) > 0 {
		r, err := s.Difference(out, diff)
		if err != nil {
			report.fail(err)
			return region, report
		}
		out = r
	}
	return out, report
}
