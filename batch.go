package aamesh

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DrawCall describes one independent Fill or Stroke call.
type DrawCall struct {
	// Path is the geometry to draw.
	Path *Path

	// Stroke strokes Path when set; nil fills it.
	Stroke *Stroke

	// Style is copied into every vertex of the mesh.
	Style Style

	// Scale is the device pixels per path unit.
	Scale float32

	// Options hold the clip and diff paths of the call.
	Options []DrawOption
}

// Draw runs a single draw call.
func (p *Pipeline) Draw(call DrawCall) (*Result, error) {
	if call.Stroke != nil {
		return p.Stroke(call.Path, *call.Stroke, call.Style, call.Scale, call.Options...)
	}
	return p.Fill(call.Path, call.Style, call.Scale, call.Options...)
}

// BuildBatch runs independent draw calls concurrently, at most GOMAXPROCS
// at a time. Results are returned in call order. The first failing call
// cancels the calls that have not started yet; ctx is checked between
// calls, not inside them. A cancellation after every call has finished
// does not discard the results.
func (p *Pipeline) BuildBatch(ctx context.Context, calls []DrawCall) ([]*Result, error) {
	results := make([]*Result, len(calls))
	var skipped atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, call := range calls {
		if gctx.Err() != nil {
			skipped.Store(true)
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				skipped.Store(true)
				return err
			}
			r, err := p.Draw(call)
			if err != nil {
				return fmt.Errorf("aamesh: draw call %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if skipped.Load() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return results, nil
}
