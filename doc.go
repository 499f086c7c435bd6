// Package aamesh builds anti-aliased coverage meshes from 2D vector paths.
//
// # Overview
//
// A fill or stroke goes through a fixed pipeline:
//
//	Path -> flatten -> dash -> clip/diff -> offset -> coverage mesh
//
// Curves are flattened into polylines, strokes are optionally split into
// dashes, the contours are clipped against the draw call's clip and diff
// paths, and a polygon offset engine turns them into the solid region of
// the shape: an inset for fills, a ring or capped outline for strokes.
// Finally every boundary vertex is extruded by one device pixel into a
// strip of triangles whose vertices carry coverage 1 on the boundary and 0
// outside it. A GPU interpolates coverage across the strip, which gives
// smooth edges without multisampling.
//
// # Quick Start
//
//	import "github.com/gogpu/aamesh"
//
//	p := aamesh.New()
//
//	path := aamesh.NewPath()
//	path.RoundedRectangle(0, 0, 150, 150, 10)
//
//	res, err := p.Fill(path, aamesh.Solid(0xff0000ff), 2)
//	if err != nil {
//	    return err
//	}
//	vertices := res.Mesh.VertexBytes()
//	indices := res.Mesh.IndexBytes()
//
// The mesh only covers the anti-aliased ramp. The interior is described by
// Result.Boundary, which consumers fill with their own tessellator or
// stencil pass.
//
// # Coordinate System
//
// Paths are in renderer units. The scale factor passed to Fill and Stroke
// is the number of device pixels per unit; the ramp is 1/scale units wide.
//
// # Errors
//
// Only contract violations are reported as errors: a nil path, a
// non-positive scale and an invalid dash pattern. Failing boolean
// operations fall back to their input and are counted in
// Result.BooleanFailures.
package aamesh

// Version is the current version of the library.
const Version = "0.1.0"
