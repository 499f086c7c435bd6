package aamesh

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/aamesh/internal/boolean"
	"github.com/gogpu/aamesh/internal/geom"
)

func sampleCalls(n int) []DrawCall {
	calls := make([]DrawCall, n)
	for i := range calls {
		path := squarePath(float32(i*20), 0, 10)
		calls[i] = DrawCall{Path: path, Style: Solid(uint32(i)), Scale: 1}
		if i%2 == 1 {
			s := DefaultStroke().WithWidth(3)
			calls[i].Stroke = &s
		}
	}
	return calls
}

func TestBuildBatchMatchesSequential(t *testing.T) {
	p := New()
	calls := sampleCalls(16)

	results, err := p.BuildBatch(context.Background(), calls)
	require.NoError(t, err)
	require.Len(t, results, len(calls))

	for i, call := range calls {
		want, err := p.Draw(call)
		require.NoError(t, err)
		assert.Equal(t, want.Boundary, results[i].Boundary, "call %d", i)
		assert.Equal(t, want.Mesh.Indices(), results[i].Mesh.Indices(), "call %d", i)
	}
}

func TestBuildBatchReportsFailingCall(t *testing.T) {
	calls := sampleCalls(4)
	calls[2].Path = nil

	results, err := New().BuildBatch(context.Background(), calls)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrNilPath)
	assert.Contains(t, err.Error(), fmt.Sprintf("draw call %d", 2))
}

func TestBuildBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := New().BuildBatch(ctx, sampleCalls(4))
	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}

// cancelingSolver cancels a context while a draw call is running.
type cancelingSolver struct {
	*boolean.ClipperSolver
	cancel context.CancelFunc
}

func (s cancelingSolver) Union(a, b geom.ContourSet) (geom.ContourSet, error) {
	s.cancel()
	return s.ClipperSolver.Union(a, b)
}

func TestBuildBatchKeepsFinishedResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p := New(WithSolver(cancelingSolver{boolean.NewClipperSolver(DefaultFlattenTolerance), cancel}))

	results, err := p.BuildBatch(ctx, []DrawCall{{Path: squarePath(0, 0, 10), Style: Solid(1), Scale: 1}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0])
	assert.False(t, results[0].Mesh.Empty())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestBuildBatchEmpty(t *testing.T) {
	results, err := New().BuildBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
