// Package preview renders coverage meshes and their solid boundaries on the
// CPU, for demos, golden images and debugging without a GPU.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/aamesh/internal/geom"
)

// Mesh is the read-only view of a coverage mesh the canvas draws.
type Mesh interface {
	VertexCount() int
	Vertex(i int) (geom.Point, float32)
	Indices() []uint32
}

// Canvas is an RGBA image addressed in path units. Path coordinates are
// multiplied by Scale to get pixels.
type Canvas struct {
	img   *image.RGBA
	scale float32
}

// NewCanvas creates a transparent canvas of w x h pixels.
func NewCanvas(w, h int, scale float32) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: scale,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillContours fills the closed contours of set with the non-zero rule.
// Open contours are skipped.
func (c *Canvas) FillContours(set geom.ContourSet, col color.Color) {
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over

	drawn := false
	for _, ct := range set {
		if !ct.Closed || len(ct.Points) < 3 {
			continue
		}
		p0 := ct.Points[0]
		r.MoveTo(p0.X*c.scale, p0.Y*c.scale)
		for _, p := range ct.Points[1:] {
			r.LineTo(p.X*c.scale, p.Y*c.scale)
		}
		r.ClosePath()
		drawn = true
	}
	if drawn {
		r.Draw(c.img, b, image.NewUniform(col), image.Point{})
	}
}

// DrawMesh composites m over the canvas. Each pixel center inside a
// triangle takes col with its alpha multiplied by the interpolated
// coverage.
func (c *Canvas) DrawMesh(m Mesh, col color.Color) {
	src := color.NRGBAModel.Convert(col).(color.NRGBA)
	idx := m.Indices()
	for t := 0; t+2 < len(idx); t += 3 {
		var pts [3]geom.Point
		var cov [3]float32
		for k := range 3 {
			p, cv := m.Vertex(int(idx[t+k]))
			pts[k] = p.Mul(c.scale)
			cov[k] = cv
		}
		c.triangle(pts, cov, src)
	}
}

func (c *Canvas) triangle(p [3]geom.Point, cov [3]float32, src color.NRGBA) {
	area := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
	if math32.Abs(area) < 1e-9 {
		return
	}

	b := c.img.Bounds()
	x0 := max(int(math32.Floor(min(p[0].X, p[1].X, p[2].X))), b.Min.X)
	x1 := min(int(math32.Ceil(max(p[0].X, p[1].X, p[2].X))), b.Max.X)
	y0 := max(int(math32.Floor(min(p[0].Y, p[1].Y, p[2].Y))), b.Min.Y)
	y1 := min(int(math32.Ceil(max(p[0].Y, p[1].Y, p[2].Y))), b.Max.Y)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			q := geom.Pt(float32(x)+0.5, float32(y)+0.5)
			w0 := p[2].Sub(p[1]).Cross(q.Sub(p[1])) / area
			w1 := p[0].Sub(p[2]).Cross(q.Sub(p[2])) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			coverage := w0*cov[0] + w1*cov[1] + w2*cov[2]
			c.blend(x, y, src, coverage)
		}
	}
}

// blend composites src scaled by coverage over the pixel at (x, y).
func (c *Canvas) blend(x, y int, src color.NRGBA, coverage float32) {
	a := float32(src.A) / 255 * min(max(coverage, 0), 1)
	if a <= 0 {
		return
	}
	i := c.img.PixOffset(x, y)
	px := c.img.Pix[i : i+4 : i+4]
	inv := 1 - a
	px[0] = uint8(math32.Round(float32(src.R)*a + float32(px[0])*inv))
	px[1] = uint8(math32.Round(float32(src.G)*a + float32(px[1])*inv))
	px[2] = uint8(math32.Round(float32(src.B)*a + float32(px[2])*inv))
	px[3] = uint8(math32.Round(255*a + float32(px[3])*inv))
}
