package preview

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/aamesh/internal/geom"
)

type testMesh struct {
	pos     []geom.Point
	cov     []float32
	indices []uint32
}

func (m testMesh) VertexCount() int { return len(m.pos) }
func (m testMesh) Vertex(i int) (geom.Point, float32) {
	return m.pos[i], m.cov[i]
}
func (m testMesh) Indices() []uint32 { return m.indices }

func TestFillContours(t *testing.T) {
	c := NewCanvas(20, 20, 1)
	square := geom.Contour{Points: []geom.Point{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}, Closed: true}
	c.FillContours(geom.ContourSet{square}, color.White)

	img := c.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(10, 10).A, "inside")
	assert.Equal(t, uint8(0), img.RGBAAt(2, 2).A, "outside")
}

func TestFillContoursHole(t *testing.T) {
	c := NewCanvas(30, 30, 1)
	outer := geom.Contour{Points: []geom.Point{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}, {X: 0, Y: 30}}, Closed: true}
	hole := geom.Contour{Points: []geom.Point{{X: 10, Y: 10}, {X: 10, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 10}}, Closed: true}
	c.FillContours(geom.ContourSet{outer, hole}, color.White)

	img := c.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(5, 5).A)
	assert.Equal(t, uint8(0), img.RGBAAt(15, 15).A)
}

func TestDrawMeshInterpolatesCoverage(t *testing.T) {
	// A 10 px wide quad ramping from coverage 1 at x=0 to 0 at x=10.
	m := testMesh{
		pos:     []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 4}, {X: 10, Y: 4}},
		cov:     []float32{1, 0, 1, 0},
		indices: []uint32{0, 1, 3, 0, 3, 2},
	}
	c := NewCanvas(10, 4, 1)
	c.DrawMesh(m, color.White)

	img := c.Image()
	left := img.RGBAAt(0, 2).A
	mid := img.RGBAAt(5, 2).A
	right := img.RGBAAt(9, 2).A
	assert.Greater(t, left, mid)
	assert.Greater(t, mid, right)
	assert.InDelta(t, 255*0.45, float64(mid), 3)
}

func TestDrawMeshScale(t *testing.T) {
	m := testMesh{
		pos:     []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 5}},
		cov:     []float32{1, 1, 1},
		indices: []uint32{0, 1, 2},
	}
	c := NewCanvas(10, 10, 2)
	c.DrawMesh(m, color.White)

	assert.Equal(t, uint8(255), c.Image().RGBAAt(2, 2).A)
	assert.Equal(t, uint8(0), c.Image().RGBAAt(9, 9).A)
}

func TestDegenerateTriangleSkipped(t *testing.T) {
	m := testMesh{
		pos:     []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}},
		cov:     []float32{1, 1, 1},
		indices: []uint32{0, 1, 2},
	}
	c := NewCanvas(10, 10, 1)
	c.DrawMesh(m, color.White)
	for _, v := range c.Image().Pix {
		assert.Zero(t, v)
	}
}
