package aamesh

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromGeomPath converts a seehuhn.de/go/geom path into a Path. Coordinates
// are narrowed to float32.
func FromGeomPath(src path.Path) *Path {
	p := NewPath()
	if src == nil {
		return p
	}
	for cmd, pts := range src {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(narrow(pts[0].X), narrow(pts[0].Y))
		case path.CmdLineTo:
			p.LineTo(narrow(pts[0].X), narrow(pts[0].Y))
		case path.CmdQuadTo:
			p.QuadraticTo(narrow(pts[0].X), narrow(pts[0].Y), narrow(pts[1].X), narrow(pts[1].Y))
		case path.CmdCubeTo:
			p.CubicTo(
				narrow(pts[0].X), narrow(pts[0].Y),
				narrow(pts[1].X), narrow(pts[1].Y),
				narrow(pts[2].X), narrow(pts[2].Y),
			)
		case path.CmdClose:
			p.Close()
		}
	}
	return p
}

// GeomData converts the path to a seehuhn.de/go/geom path.Data.
func (p *Path) GeomData() *path.Data {
	d := &path.Data{
		Cmds:   make([]path.Command, 0, len(p.elements)),
		Coords: make([]vec.Vec2, 0, 2*len(p.elements)),
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
			d.Coords = append(d.Coords, v2(e.Point))
		case LineTo:
			d.Cmds = append(d.Cmds, path.CmdLineTo)
			d.Coords = append(d.Coords, v2(e.Point))
		case QuadTo:
			d.Cmds = append(d.Cmds, path.CmdQuadTo)
			d.Coords = append(d.Coords, v2(e.Control), v2(e.Point))
		case CubicTo:
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords, v2(e.Control1), v2(e.Control2), v2(e.Point))
		case Close:
			d.Cmds = append(d.Cmds, path.CmdClose)
		}
	}
	return d
}

// GeomPath returns an iterator over the path in seehuhn.de/go/geom form.
func (p *Path) GeomPath() path.Path {
	d := p.GeomData()
	return func(yield func(path.Command, []vec.Vec2) bool) {
		i := 0
		for _, cmd := range d.Cmds {
			n := coordCount(cmd)
			if !yield(cmd, d.Coords[i:i+n]) {
				return
			}
			i += n
		}
	}
}

func coordCount(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

func narrow(v float64) float32 { return float32(v) }

func v2(p Point) vec.Vec2 { return vec.Vec2{X: float64(p.X), Y: float64(p.Y)} }
