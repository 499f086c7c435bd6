package aamesh

import "github.com/gogpu/aamesh/internal/geom"

// Point represents a 2D point or vector in renderer units.
type Point = geom.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return geom.Pt(x, y)
}
