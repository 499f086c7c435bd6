package aamesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathElements(t *testing.T) {
	p := NewPath()
	assert.False(t, p.HasCurrentPoint())

	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)
	p.Close()

	want := []PathElement{
		MoveTo{Point: Pt(1, 2)},
		LineTo{Point: Pt(3, 4)},
		QuadTo{Control: Pt(5, 6), Point: Pt(7, 8)},
		CubicTo{Control1: Pt(9, 10), Control2: Pt(11, 12), Point: Pt(13, 14)},
		Close{},
	}
	assert.Equal(t, want, p.Elements())
	assert.True(t, p.HasCurrentPoint())
	assert.Equal(t, Pt(1, 2), p.CurrentPoint(), "close returns to the subpath start")

	p.Clear()
	assert.Zero(t, p.Len())
	assert.False(t, p.HasCurrentPoint())
}

func TestFlattenedFlag(t *testing.T) {
	p := NewFlattenedPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	assert.True(t, p.Flattened())

	p.QuadraticTo(2, 1, 3, 0)
	assert.False(t, p.Flattened(), "adding a curve clears the flag")

	assert.False(t, NewPath().Flattened())
}

func TestRectangleFlattens(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)

	set := New().Flatten(p)
	require.Len(t, set, 1)
	assert.True(t, set[0].Closed)
	assert.Equal(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 20), Pt(0, 20)}, set[0].Points)
}

func TestCircleWithinTolerance(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 40)
	set := New().Flatten(p)
	require.Len(t, set, 1)

	for _, pt := range set[0].Points {
		r := pt.Distance(Pt(50, 50))
		assert.InDelta(t, 40, r, 0.06)
	}
}

func TestArc(t *testing.T) {
	t.Run("starts a subpath without a current point", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 10, 0, math32.Pi)
		elems := p.Elements()
		require.IsType(t, MoveTo{}, elems[0])
		assert.InDelta(t, 10, elems[0].(MoveTo).Point.X, 1e-5)
		assert.Len(t, elems, 3, "half circle is two quarter segments")

		end := p.CurrentPoint()
		assert.InDelta(t, -10, end.X, 1e-4)
		assert.InDelta(t, 0, end.Y, 1e-4)
	})

	t.Run("joins the current point with a line", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(-5, -5)
		p.Arc(0, 0, 10, 0, math32.Pi/2)
		require.IsType(t, LineTo{}, p.Elements()[1])
	})

	t.Run("wraps a backwards sweep into one turn", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 10, math32.Pi/2, 0)
		assert.GreaterOrEqual(t, p.Len(), 4, "three quarter turn needs three segments")
		end := p.CurrentPoint()
		assert.InDelta(t, 10, end.X, 1e-3)
		assert.InDelta(t, 0, end.Y, 1e-3)
	})

	t.Run("keeps a full turn", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 10, 0, 2*math32.Pi)
		assert.Len(t, p.Elements(), 5)
	})

	t.Run("bounded for far apart angles", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 10, 0, -1e30)
		assert.LessOrEqual(t, p.Len(), 5)

		q := NewPath()
		q.ArcNegative(0, 0, 10, 1e30, -1e30)
		assert.LessOrEqual(t, q.Len(), 9)
	})

	t.Run("non-finite angles add nothing", func(t *testing.T) {
		for _, a := range []float32{math32.Inf(1), math32.Inf(-1), math32.NaN()} {
			p := NewPath()
			p.Arc(0, 0, 10, 0, a)
			p.ArcNegative(0, 0, 10, a, 0)
			assert.Zero(t, p.Len(), "angle %v", a)
		}
	})

	t.Run("negative sweep", func(t *testing.T) {
		p := NewPath()
		p.ArcNegative(0, 0, 10, 0, -math32.Pi/2)
		end := p.CurrentPoint()
		assert.InDelta(t, 0, end.X, 1e-4)
		assert.InDelta(t, -10, end.Y, 1e-4)
	})
}

func TestRoundedRectangle(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 150, 150, 10)

	for _, elem := range p.Elements() {
		_, isLine := elem.(LineTo)
		if isLine {
			continue
		}
		_, isMove := elem.(MoveTo)
		_, isCubic := elem.(CubicTo)
		_, isClose := elem.(Close)
		assert.True(t, isMove || isCubic || isClose, "unexpected %T", elem)
	}

	set := New().Flatten(p)
	require.Len(t, set, 1)
	b := set[0].Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-3)
	assert.InDelta(t, 150, b.Max.Y, 1e-3)

	t.Run("radius clamps to half the short side", func(t *testing.T) {
		p := NewPath()
		p.RoundedRectangle(0, 0, 20, 10, 50)
		set := New().Flatten(p)
		require.Len(t, set, 1)
		assert.InDelta(t, 10, set[0].Bounds().Height(), 1e-3)
	})

	t.Run("zero radius is a rectangle", func(t *testing.T) {
		p := NewPath()
		p.RoundedRectangle(0, 0, 20, 10, 0)
		assert.Len(t, p.Elements(), 5)
	})
}

func TestTranslateAndClone(t *testing.T) {
	p := BuildPath().MoveTo(0, 0).QuadTo(5, 5, 10, 0).Close().Build()

	moved := p.Translate(Pt(1, 2))
	assert.Equal(t, MoveTo{Point: Pt(1, 2)}, moved.Elements()[0])
	assert.Equal(t, QuadTo{Control: Pt(6, 7), Point: Pt(11, 2)}, moved.Elements()[1])
	assert.Equal(t, MoveTo{Point: Pt(0, 0)}, p.Elements()[0], "source untouched")

	c := p.Clone()
	c.LineTo(3, 3)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 4, c.Len())
}

func TestPathFromContours(t *testing.T) {
	set := ContourSet{
		{Points: []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, Closed: true},
		{Points: []Point{Pt(5, 5), Pt(6, 6)}},
	}
	p := PathFromContours(set)
	assert.True(t, p.Flattened())
	assert.Equal(t, set, New().Flatten(p))
}

func TestPathBuilderShapes(t *testing.T) {
	tests := []struct {
		name   string
		build  func(*PathBuilder) *PathBuilder
		points int
	}{
		{"polygon", func(b *PathBuilder) *PathBuilder { return b.Polygon(0, 0, 10, 6) }, 6},
		{"star", func(b *PathBuilder) *PathBuilder { return b.Star(0, 0, 10, 4, 5) }, 10},
		{"rect", func(b *PathBuilder) *PathBuilder { return b.Rect(0, 0, 4, 4) }, 4},
		{"degenerate polygon", func(b *PathBuilder) *PathBuilder { return b.Polygon(0, 0, 10, 2) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := New().Flatten(tt.build(BuildPath()).Build())
			assert.Equal(t, tt.points, set.PointCount())
		})
	}
}
