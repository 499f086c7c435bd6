// Package dash splits flattened contours into the "on" runs of a repeating
// dash pattern.
package dash

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/gogpu/aamesh/internal/geom"
)

// ErrInvalidPattern is returned for an empty pattern or one holding a
// non-positive or non-finite length. It reports a caller contract violation.
var ErrInvalidPattern = errors.New("dash: pattern must be non-empty with strictly positive lengths")

// Validate checks that pattern can drive the splitter.
func Validate(pattern []float32) error {
	if len(pattern) == 0 {
		return ErrInvalidPattern
	}
	for _, l := range pattern {
		if !(l > 0) || math32.IsInf(l, 1) {
			return ErrInvalidPattern
		}
	}
	return nil
}

// state is the cursor into the pattern.
type state struct {
	pattern   []float32
	idx       int
	remaining float32
	draw      bool
}

func newState(pattern []float32, offset int) state {
	n := len(pattern)
	idx := offset % n
	if idx < 0 {
		idx += n
	}
	return state{
		pattern:   pattern,
		idx:       idx,
		remaining: pattern[idx],
		draw:      idx%2 == 0,
	}
}

// advance moves to the next pattern element, wrapping, and flips drawing.
func (s *state) advance() {
	s.idx = (s.idx + 1) % len(s.pattern)
	s.remaining = s.pattern[s.idx]
	s.draw = !s.draw
}

// splitter accumulates output runs.
type splitter struct {
	state
	out geom.ContourSet
	run []geom.Point
}

// Split walks every segment of set, including the closing segment of closed
// contours, and returns one open contour per maximal "on" run.
//
// The cursor starts at pattern[offset mod len(pattern)]; even indices draw.
// The pattern state continues across contours, but a run never spans two
// input contours. Zero-length segments are skipped.
func Split(set geom.ContourSet, pattern []float32, offset int) (geom.ContourSet, error) {
	if err := Validate(pattern); err != nil {
		return nil, err
	}

	sp := splitter{state: newState(pattern, offset)}
	for _, c := range set {
		n := len(c.Points)
		for i := 1; i < n; i++ {
			sp.segment(c.Points[i-1], c.Points[i])
		}
		if c.Closed && n > 2 {
			sp.segment(c.Points[n-1], c.Points[0])
		}
		sp.endRun()
	}
	return sp.out, nil
}

func (sp *splitter) segment(from, to geom.Point) {
	segLen := float64(to.Sub(from).Length())
	if segLen == 0 {
		return
	}

	// Distance along the segment is tracked in float64 and points are
	// interpolated from the segment ends, so a pattern length below the
	// float32 spacing at segLen still makes progress.
	var travelled float64
	cursor := from
	for travelled < segLen {
		take := float64(sp.remaining)
		next := to
		if left := segLen - travelled; take >= left {
			take = left
			travelled = segLen
		} else {
			travelled += take
			next = from.Lerp(to, float32(travelled/segLen))
		}

		if sp.draw {
			if sp.run == nil {
				sp.run = []geom.Point{cursor}
			}
			if next != cursor {
				sp.run = append(sp.run, next)
			}
		}

		cursor = next
		sp.remaining -= float32(take)
		if sp.remaining <= 0 {
			sp.endRun()
			sp.advance()
		}
	}
}

func (sp *splitter) endRun() {
	if len(sp.run) >= 2 {
		sp.out = append(sp.out, geom.Contour{Points: sp.run})
	}
	sp.run = nil
}

// PatternLength returns the total length of one pattern cycle.
func PatternLength(pattern []float32) float32 {
	var total float32
	for _, l := range pattern {
		total += l
	}
	return total
}
