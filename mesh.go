package aamesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/aamesh/internal/coverage"
)

// Strip describes the vertices and indices built for one contour. Strips
// appear in contour order.
type Strip = coverage.Strip

// Vertex strides in bytes.
//
// Solid layout:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	coverage (f32)       = 4 bytes  (location 1)
//	color    (u32)       = 4 bytes  (location 2)
//
// Gradient layout:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	coverage (f32)       = 4 bytes  (location 1)
//	payload  (vec4<f32>) = 16 bytes (location 2)
//	payload  (vec4<f32>) = 16 bytes (location 3)
const (
	solidVertexStride    = 16
	gradientVertexStride = 44
)

// Mesh is the output of a pipeline call: a triangle list whose vertices
// carry coverage 1 on the solid boundary and 0 one feather radius outside
// it. A Mesh is either *SolidMesh or *GradientMesh and is immutable once
// built.
type Mesh interface {
	// VertexCount returns the number of vertices.
	VertexCount() int
	// Vertex returns the position and coverage of vertex i.
	Vertex(i int) (Point, float32)
	// Indices returns the triangle list, three indices per triangle.
	Indices() []uint32
	// Strips returns per-contour strip metadata.
	Strips() []Strip
	// VertexLayout describes one vertex for a GPU pipeline.
	VertexLayout() gputypes.VertexBufferLayout
	// VertexBytes encodes the vertices little-endian per VertexLayout.
	VertexBytes() []byte
	// IndexBytes encodes the indices as little-endian uint32.
	IndexBytes() []byte
	// IndexFormat returns the format IndexBytes is encoded in.
	IndexFormat() gputypes.IndexFormat
	// Topology returns the primitive topology of Indices.
	Topology() gputypes.PrimitiveTopology
	// Empty reports a mesh without triangles.
	Empty() bool

	isMesh()
}

// MeshPrimitiveState returns the primitive state meshes are drawn with.
// Strip winding depends on contour orientation, so culling must be off.
func MeshPrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// SolidVertex is a vertex of a SolidMesh.
type SolidVertex struct {
	Position f32.Vec2
	Coverage float32
	Color    uint32
}

// GradientVertex is a vertex of a GradientMesh.
type GradientVertex struct {
	Position f32.Vec2
	Coverage float32
	Gradient [8]float32
}

// triangles is the index and strip data shared by both mesh kinds.
type triangles struct {
	indices []uint32
	strips  []Strip
}

func (t *triangles) Indices() []uint32 { return t.indices }
func (t *triangles) Strips() []Strip   { return t.strips }
func (t *triangles) Empty() bool       { return len(t.indices) == 0 }

func (t *triangles) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

func (t *triangles) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

func (t *triangles) IndexBytes() []byte {
	buf := make([]byte, 0, 4*len(t.indices))
	for _, i := range t.indices {
		buf = binary.LittleEndian.AppendUint32(buf, i)
	}
	return buf
}

// SolidMesh is a mesh filled with a single color.
type SolidMesh struct {
	triangles
	Vertices []SolidVertex
}

func (*SolidMesh) isMesh() {}

// VertexCount implements Mesh.
func (m *SolidMesh) VertexCount() int { return len(m.Vertices) }

// Vertex implements Mesh.
func (m *SolidMesh) Vertex(i int) (Point, float32) {
	v := m.Vertices[i]
	return Pt(v.Position[0], v.Position[1]), v.Coverage
}

// VertexLayout implements Mesh.
func (m *SolidMesh) VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: solidVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatUint32, Offset: 12, ShaderLocation: 2},
		},
	}
}

// VertexBytes implements Mesh.
func (m *SolidMesh) VertexBytes() []byte {
	buf := make([]byte, 0, solidVertexStride*len(m.Vertices))
	for _, v := range m.Vertices {
		buf = appendFloat32(buf, v.Position[0])
		buf = appendFloat32(buf, v.Position[1])
		buf = appendFloat32(buf, v.Coverage)
		buf = binary.LittleEndian.AppendUint32(buf, v.Color)
	}
	return buf
}

// GradientMesh is a mesh carrying a gradient payload per vertex.
type GradientMesh struct {
	triangles
	Vertices []GradientVertex
}

func (*GradientMesh) isMesh() {}

// VertexCount implements Mesh.
func (m *GradientMesh) VertexCount() int { return len(m.Vertices) }

// Vertex implements Mesh.
func (m *GradientMesh) Vertex(i int) (Point, float32) {
	v := m.Vertices[i]
	return Pt(v.Position[0], v.Position[1]), v.Coverage
}

// VertexLayout implements Mesh.
func (m *GradientMesh) VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: gradientVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 28, ShaderLocation: 3},
		},
	}
}

// VertexBytes implements Mesh.
func (m *GradientMesh) VertexBytes() []byte {
	buf := make([]byte, 0, gradientVertexStride*len(m.Vertices))
	for _, v := range m.Vertices {
		buf = appendFloat32(buf, v.Position[0])
		buf = appendFloat32(buf, v.Position[1])
		buf = appendFloat32(buf, v.Coverage)
		for _, g := range v.Gradient {
			buf = appendFloat32(buf, g)
		}
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}

// newMesh wraps raw coverage geometry with a style. A nil style builds a
// SolidMesh with a zero color.
func newMesh(g coverage.Geometry, style Style) Mesh {
	tri := triangles{indices: g.Indices, strips: g.Strips}
	switch s := style.(type) {
	case GradientStyle:
		vs := make([]GradientVertex, len(g.Vertices))
		for i, v := range g.Vertices {
			vs[i] = GradientVertex{
				Position: f32.Vec2{v.Position.X, v.Position.Y},
				Coverage: v.Coverage,
				Gradient: s.Payload,
			}
		}
		return &GradientMesh{triangles: tri, Vertices: vs}
	default:
		var color uint32
		if solid, ok := s.(SolidStyle); ok {
			color = solid.Color
		}
		vs := make([]SolidVertex, len(g.Vertices))
		for i, v := range g.Vertices {
			vs[i] = SolidVertex{
				Position: f32.Vec2{v.Position.X, v.Position.Y},
				Coverage: v.Coverage,
				Color:    color,
			}
		}
		return &SolidMesh{triangles: tri, Vertices: vs}
	}
}
