package aamesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquareMesh(t *testing.T, style Style) Mesh {
	t.Helper()
	res, err := New().Fill(squarePath(0, 0, 10), style, 1)
	require.NoError(t, err)
	return res.Mesh
}

func TestSolidMeshLayout(t *testing.T) {
	m := buildSquareMesh(t, Solid(0xaabbccdd))

	layout := m.VertexLayout()
	assert.EqualValues(t, 16, layout.ArrayStride)
	assert.Equal(t, gputypes.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 3)
	assert.Equal(t, gputypes.VertexFormatFloat32x2, layout.Attributes[0].Format)
	assert.Equal(t, gputypes.VertexFormatFloat32, layout.Attributes[1].Format)
	assert.EqualValues(t, 12, layout.Attributes[2].Offset)

	assert.Equal(t, gputypes.IndexFormatUint32, m.IndexFormat())
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, m.Topology())
}

func TestSolidMeshBytes(t *testing.T) {
	m := buildSquareMesh(t, Solid(0xaabbccdd))

	vb := m.VertexBytes()
	require.Len(t, vb, 16*m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		v := vb[16*i:]
		pos, cov := m.Vertex(i)
		assert.Equal(t, pos.X, math.Float32frombits(binary.LittleEndian.Uint32(v[0:])))
		assert.Equal(t, pos.Y, math.Float32frombits(binary.LittleEndian.Uint32(v[4:])))
		assert.Equal(t, cov, math.Float32frombits(binary.LittleEndian.Uint32(v[8:])))
		assert.Equal(t, uint32(0xaabbccdd), binary.LittleEndian.Uint32(v[12:]))
	}

	ib := m.IndexBytes()
	require.Len(t, ib, 4*len(m.Indices()))
	for i, idx := range m.Indices() {
		assert.Equal(t, idx, binary.LittleEndian.Uint32(ib[4*i:]))
	}
}

func TestGradientMeshBytes(t *testing.T) {
	payload := [8]float32{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}
	m := buildSquareMesh(t, GradientStyle{Payload: payload})

	layout := m.VertexLayout()
	assert.EqualValues(t, 44, layout.ArrayStride)
	require.Len(t, layout.Attributes, 4)
	assert.EqualValues(t, 28, layout.Attributes[3].Offset)

	vb := m.VertexBytes()
	require.Len(t, vb, 44*m.VertexCount())
	last := vb[44*(m.VertexCount()-1):]
	for k, want := range payload {
		got := math.Float32frombits(binary.LittleEndian.Uint32(last[12+4*k:]))
		assert.Equal(t, want, got)
	}
}

func TestNilStyleBuildsSolidMesh(t *testing.T) {
	m := buildSquareMesh(t, nil)
	sm, ok := m.(*SolidMesh)
	require.True(t, ok)
	assert.Zero(t, sm.Vertices[0].Color)
}

func TestCoverageIsBinary(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 20)
	res, err := New().Stroke(p, RoundStroke().WithWidth(3), Solid(1), 2)
	require.NoError(t, err)

	m := res.Mesh
	require.False(t, m.Empty())
	for i := 0; i < m.VertexCount(); i++ {
		_, c := m.Vertex(i)
		assert.True(t, c == 0 || c == 1, "vertex %d coverage %v", i, c)
	}
	for _, idx := range m.Indices() {
		assert.Less(t, int(idx), m.VertexCount())
	}
}

func TestMeshPrimitiveState(t *testing.T) {
	s := MeshPrimitiveState()
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, s.Topology)
	assert.Equal(t, gputypes.CullModeNone, s.CullMode)
}
