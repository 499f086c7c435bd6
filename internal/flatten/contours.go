package flatten

import "github.com/gogpu/aamesh/internal/geom"

// Flatten converts path elements into contours.
//
// Consecutive identical points are merged. When a closed contour ends on its
// own start point, that trailing duplicate is dropped. Contours left with
// fewer than two points are discarded without error.
func Flatten(elements []geom.PathElement, alreadyFlattened bool, tolerance float32) geom.ContourSet {
	var (
		set     geom.ContourSet
		current []geom.Point
	)

	for ev := range Events(elements, alreadyFlattened, tolerance) {
		switch ev.Kind {
		case EventBegin:
			current = []geom.Point{ev.To}

		case EventLine:
			if n := len(current); n == 0 || current[n-1] != ev.To {
				current = append(current, ev.To)
			}

		case EventEnd:
			if ev.Closed && len(current) >= 2 && current[0] == current[len(current)-1] {
				current = current[:len(current)-1]
			}
			if len(current) >= 2 {
				set = append(set, geom.Contour{Points: current, Closed: ev.Closed})
			}
			current = nil
		}
	}

	return set
}
