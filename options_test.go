package aamesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/aamesh/internal/boolean"
)

func TestPipelineOptions(t *testing.T) {
	p := New(
		WithTolerance(0.25),
		WithMiterLimit(8),
		WithSimplifyEpsilon(0),
		WithAAFeather(1.5),
		WithClipperScale(4096),
	)
	cfg := p.Config()
	assert.Equal(t, float32(0.25), cfg.FlattenTolerance)
	assert.Equal(t, float32(8), cfg.MiterLimit)
	assert.Equal(t, float32(0), cfg.SimplifyEpsilon)
	assert.Equal(t, float32(1.5), cfg.AAFeather)
	assert.Equal(t, float32(4096), cfg.ClipperScale)

	solver, ok := p.solver.(*boolean.ClipperSolver)
	require.True(t, ok, "default solver should be the clipper solver")
	assert.Equal(t, float32(4096), solver.Scale)
	assert.Equal(t, float32(8), solver.MiterLimit)
	assert.Equal(t, float32(0.25), solver.ArcTolerance)
}

func TestPipelineOptionsIgnoreInvalid(t *testing.T) {
	p := New(
		WithTolerance(-1),
		WithTolerance(math32.NaN()),
		WithMiterLimit(0.5),
		WithSimplifyEpsilon(-2),
		WithAAFeather(0),
		WithClipperScale(math32.Inf(1)),
	)
	assert.Equal(t, DefaultConfig(), p.Config())
}

func TestNewFallsBackOnInvalidConfig(t *testing.T) {
	bad := DefaultConfig()
	bad.MiterLimit = 0

	p := New(WithConfig(bad))
	assert.Equal(t, DefaultConfig(), p.Config())

	_, err := NewWithConfig(bad)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWithSolver(t *testing.T) {
	custom := &boolean.ClipperSolver{Scale: 64, MiterLimit: 2}
	p := New(WithSolver(custom))
	assert.Same(t, custom, p.solver)
}

func TestDrawOptions(t *testing.T) {
	clip := NewPath()
	diff := NewPath()
	var o drawOptions
	for _, opt := range []DrawOption{WithClip(clip), WithDiff(diff), WithClipOffset(Pt(3, 4))} {
		opt(&o)
	}
	assert.Same(t, clip, o.clip)
	assert.Same(t, diff, o.diff)
	assert.Equal(t, Pt(3, 4), o.offset)
}
