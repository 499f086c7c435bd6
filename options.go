package aamesh

import "github.com/gogpu/aamesh/internal/boolean"

// Solver is the boolean and offset capability the pipeline delegates to.
// The default is a clipper-backed solver configured from Config.
type Solver = boolean.Solver

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default constants
//	p := aamesh.New()
//
//	// Coarser curves, sharper joins
//	p := aamesh.New(aamesh.WithTolerance(0.25), aamesh.WithMiterLimit(8))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	cfg    Config
	solver Solver
}

// WithConfig replaces every engine constant at once. Invalid values are
// reported by NewWithConfig; New falls back to the defaults.
func WithConfig(cfg Config) Option {
	return func(o *pipelineOptions) {
		o.cfg = cfg
	}
}

// WithTolerance sets the curve flattening tolerance. Non-positive values
// are ignored.
func WithTolerance(tolerance float32) Option {
	return func(o *pipelineOptions) {
		if positive(tolerance) {
			o.cfg.FlattenTolerance = tolerance
		}
	}
}

// WithMiterLimit sets the miter ratio for offset joins. Values below 1 are
// ignored.
func WithMiterLimit(limit float32) Option {
	return func(o *pipelineOptions) {
		if positive(limit) && limit >= 1 {
			o.cfg.MiterLimit = limit
		}
	}
}

// WithSimplifyEpsilon sets the vertex merge distance of offset results.
// Zero disables simplification; negative values are ignored.
func WithSimplifyEpsilon(eps float32) Option {
	return func(o *pipelineOptions) {
		if eps >= 0 {
			o.cfg.SimplifyEpsilon = eps
		}
	}
}

// WithAAFeather sets the coverage ramp width in device pixels.
// Non-positive values are ignored.
func WithAAFeather(px float32) Option {
	return func(o *pipelineOptions) {
		if positive(px) {
			o.cfg.AAFeather = px
		}
	}
}

// WithClipperScale sets the integer grid resolution of the clipper.
// Non-positive values are ignored.
func WithClipperScale(scale float32) Option {
	return func(o *pipelineOptions) {
		if positive(scale) {
			o.cfg.ClipperScale = scale
		}
	}
}

// WithSolver injects a custom boolean solver. The solver then owns the
// miter limit, simplification and scale settings.
func WithSolver(s Solver) Option {
	return func(o *pipelineOptions) {
		o.solver = s
	}
}

// DrawOption configures a single Fill or Stroke call.
type DrawOption func(*drawOptions)

// drawOptions holds per-call clipping.
type drawOptions struct {
	clip   *Path
	diff   *Path
	offset Point
}

// WithClip restricts the output to the inside of clip. A clip path without
// any closed contour removes everything.
func WithClip(clip *Path) DrawOption {
	return func(o *drawOptions) {
		o.clip = clip
	}
}

// WithDiff removes the inside of diff from the output. Open contours are
// only cut by closed diff contours.
func WithDiff(diff *Path) DrawOption {
	return func(o *drawOptions) {
		o.diff = diff
	}
}

// WithClipOffset translates the clip and diff paths before they are used.
func WithClipOffset(offset Point) DrawOption {
	return func(o *drawOptions) {
		o.offset = offset
	}
}
