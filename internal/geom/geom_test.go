package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAlgebra(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	assert.Equal(t, Pt(4, 2), a.Add(b))
	assert.Equal(t, Pt(2, 6), a.Sub(b))
	assert.Equal(t, Pt(6, 8), a.Mul(2))
	assert.Equal(t, Pt(1.5, 2), a.Div(2))
	assert.Equal(t, Pt(-3, -4), a.Neg())
	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(-10), a.Cross(b))
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.InDelta(t, 1.0, a.Normalize().Length(), 1e-6)
	assert.Equal(t, Point{}, Point{}.Normalize())
}

func TestPointRotations(t *testing.T) {
	e := Pt(1, 0)
	assert.Equal(t, Pt(0, -1), e.Rot90CW())
	assert.Equal(t, Pt(0, 1), e.Rot90CCW())
	assert.Equal(t, e.Rot90CCW(), e.Perp())
	assert.Equal(t, Pt(0.5, 0.5), Pt(0, 0).Lerp(Pt(1, 1), 0.5))
}

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want float32
	}{
		{"ccw unit square", []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 1},
		{"cw unit square", []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, -1},
		{"two points", []Point{{0, 0}, {1, 1}}, 0},
		{"triangle", []Point{{0, 0}, {4, 0}, {0, 3}}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SignedArea(tt.pts), 1e-6)
		})
	}
}

func TestContourLength(t *testing.T) {
	open := Contour{Points: []Point{{0, 0}, {10, 0}, {10, 10}}}
	assert.Equal(t, float32(20), open.Length())

	closed := open
	closed.Closed = true
	assert.InDelta(t, 20+14.142136, closed.Length(), 1e-4)
}

func TestContourSetHelpers(t *testing.T) {
	set := ContourSet{
		{Points: []Point{{0, 0}, {1, 0}, {1, 1}}, Closed: true},
		{Points: []Point{{5, 5}, {6, 6}}},
	}

	closed, open := set.Partition()
	assert.Len(t, closed, 1)
	assert.Len(t, open, 1)
	assert.Equal(t, 5, set.PointCount())

	b := set.Bounds()
	assert.Equal(t, Pt(0, 0), b.Min)
	assert.Equal(t, Pt(6, 6), b.Max)

	moved := set.Translate(Pt(1, 1))
	assert.Equal(t, Pt(1, 1), moved[0].Points[0])
	assert.Equal(t, Pt(0, 0), set[0].Points[0], "translate must not alias")

	assert.True(t, EmptyRect().Empty())
	assert.Equal(t, float32(0), EmptyRect().Width())
}

func TestReversed(t *testing.T) {
	c := Contour{Points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, Closed: true}
	r := c.Reversed()
	assert.Equal(t, -c.SignedArea(), r.SignedArea())
	assert.True(t, r.Closed)
}
