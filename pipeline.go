package aamesh

import (
	"context"
	"log/slog"

	"github.com/gogpu/aamesh/internal/boolean"
	"github.com/gogpu/aamesh/internal/coverage"
	"github.com/gogpu/aamesh/internal/dash"
	"github.com/gogpu/aamesh/internal/flatten"
)

// ClipReport counts the boolean operations that failed while clipping.
type ClipReport = boolean.ClipReport

// Pipeline turns path descriptions into anti-aliased coverage meshes.
//
// Every call runs the same stages: flatten curves into contours, optionally
// split them into dashes, clip them against the draw call's clip and diff
// paths, offset them into the solid region (an inset for fills, a ring or
// capped outline for strokes) and finally extrude that region's boundary
// into a one-pixel coverage ramp.
//
// A Pipeline is immutable after construction and safe for concurrent use.
type Pipeline struct {
	cfg    Config
	solver Solver
}

// New creates a pipeline with DefaultConfig adjusted by opts. An invalid
// configuration passed through WithConfig is replaced by the defaults.
func New(opts ...Option) *Pipeline {
	o := pipelineOptions{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		Logger().Warn("aamesh: invalid config, using defaults", "err", err)
		o.cfg = DefaultConfig()
	}
	return newPipeline(o)
}

// NewWithConfig creates a pipeline from cfg, reporting invalid values.
func NewWithConfig(cfg Config, opts ...Option) (*Pipeline, error) {
	o := pipelineOptions{cfg: cfg}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	return newPipeline(o), nil
}

func newPipeline(o pipelineOptions) *Pipeline {
	p := &Pipeline{cfg: o.cfg, solver: o.solver}
	if p.solver == nil {
		p.solver = &boolean.ClipperSolver{
			Scale:           o.cfg.ClipperScale,
			MiterLimit:      o.cfg.MiterLimit,
			ArcTolerance:    o.cfg.FlattenTolerance,
			SimplifyEpsilon: o.cfg.SimplifyEpsilon,
		}
	}
	return p
}

// Config returns the pipeline's engine constants.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Flatten converts path into contours. Curves are subdivided until they
// deviate less than the flatten tolerance; a nil path yields nothing.
func (p *Pipeline) Flatten(path *Path) ContourSet {
	if path == nil {
		return nil
	}
	return flatten.Flatten(path.Elements(), path.Flattened(), p.cfg.FlattenTolerance)
}

// Dash splits set into the drawn runs of d. Every returned contour is open.
// A nil or invalid pattern returns ErrInvalidDashPattern.
func (p *Pipeline) Dash(set ContourSet, d *Dash) (ContourSet, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return dash.Split(set, d.Array, d.Offset)
}

// Clip restricts set to the region of clip and removes the region of diff.
// A nil clip or diff is skipped. Contours whose operation fails are passed
// through unclipped and counted in the report.
func (p *Pipeline) Clip(set, clip, diff ContourSet) (ContourSet, ClipReport) {
	return boolean.ClipByPath(p.solver, set, clip, diff)
}

// Fill builds the mesh for the inside of path. Overlapping contours are
// resolved with the nonzero rule; open contours have no inside and are
// ignored. scale is the device pixels per path unit; the
// coverage ramp is AAFeather/scale path units wide.
func (p *Pipeline) Fill(path *Path, style Style, scale float32, opts ...DrawOption) (*Result, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	aa, err := p.aaRadius(scale)
	if err != nil {
		return nil, err
	}

	closed, open := p.Flatten(path).Partition()
	if len(open) > 0 {
		Logger().Debug("aamesh: fill ignores open contours", "count", len(open))
	}
	region, failures := p.clipDraw(closed, opts, boolean.ClipRegion)

	boundary, err := boolean.FillInset(p.solver, region, aa)
	if err != nil {
		failures = p.warnFailure("fill inset", failures, err)
		boundary = make(ContourSet, len(region))
		for i, c := range region {
			boundary[i] = boolean.NormalizeWinding(c)
		}
	}
	return p.finish("fill", boundary, style, aa, failures), nil
}

// Stroke builds the mesh for the outline of path drawn with stroke. The
// stroke width is in path units and includes the coverage ramp.
func (p *Pipeline) Stroke(path *Path, stroke Stroke, style Style, scale float32, opts ...DrawOption) (*Result, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	aa, err := p.aaRadius(scale)
	if err != nil {
		return nil, err
	}

	set := p.Flatten(path)
	if stroke.Dash != nil {
		if set, err = p.Dash(set, stroke.Dash); err != nil {
			return nil, err
		}
	}
	set, failures := p.clipDraw(set, opts, boolean.ClipByPath)

	join, end := stroke.Join.joinType(), stroke.Cap.endType()
	var boundary ContourSet
	for _, c := range set {
		outline, err := boolean.StrokeOutline(p.solver, c, stroke.Width, aa, join, end)
		if err != nil {
			failures = p.warnFailure("stroke outline", failures, err)
		}
		boundary = append(boundary, outline...)
	}
	return p.finish("stroke", boundary, style, aa, failures), nil
}

// BuildMesh extrudes the coverage ramp around contours that already
// describe a solid region. Outer contours must wind positively and holes
// negatively, as the boolean engine produces them.
func (p *Pipeline) BuildMesh(set ContourSet, style Style, scale float32) (Mesh, error) {
	aa, err := p.aaRadius(scale)
	if err != nil {
		return nil, err
	}
	return newMesh(coverage.Build(set, aa), style), nil
}

// aaRadius converts the feather width from device pixels to path units.
func (p *Pipeline) aaRadius(scale float32) (float32, error) {
	if !positive(scale) {
		return 0, ErrInvalidScale
	}
	return p.cfg.AAFeather / scale, nil
}

// clipDraw applies the clip and diff paths of a draw call with clipFn.
func (p *Pipeline) clipDraw(set ContourSet, opts []DrawOption, clipFn func(Solver, ContourSet, ContourSet, ContourSet) (ContourSet, ClipReport)) (ContourSet, int) {
	var o drawOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.clip == nil && o.diff == nil {
		return set, 0
	}

	clip := p.regionOf(o.clip, o.offset)
	diff := p.regionOf(o.diff, o.offset)
	out, report := clipFn(p.solver, set, clip, diff)
	if report.Failures > 0 {
		Logger().Warn("aamesh: clip failed, using unclipped contours",
			"failures", report.Failures, "err", report.LastErr)
	}
	return out, report.Failures
}

// regionOf flattens a clip or diff path. Only closed contours bound a
// region, so a path without any yields an empty but non-nil set.
func (p *Pipeline) regionOf(path *Path, offset Point) ContourSet {
	if path == nil {
		return nil
	}
	closed, _ := p.Flatten(path).Partition()
	if closed == nil {
		closed = ContourSet{}
	}
	if offset != (Point{}) {
		closed = closed.Translate(offset)
	}
	return closed
}

func (p *Pipeline) warnFailure(op string, failures int, err error) int {
	Logger().Warn("aamesh: boolean operation failed", "op", op, "err", err)
	return failures + 1
}

func (p *Pipeline) finish(op string, boundary ContourSet, style Style, aa float32, failures int) *Result {
	g := coverage.Build(boundary, aa)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		skipped := 0
		for _, c := range boundary {
			if len(c.Points) < 3 {
				skipped++
			}
		}
		l.Debug("aamesh: built mesh",
			"op", op,
			"contours", len(boundary),
			"skipped", skipped,
			"vertices", len(g.Vertices),
			"triangles", len(g.Indices)/3,
		)
	}
	return &Result{
		Mesh:            newMesh(g, style),
		Boundary:        boundary,
		BooleanFailures: failures,
	}
}

// Result is the output of a Fill or Stroke call.
type Result struct {
	// Mesh is the coverage ramp around Boundary.
	Mesh Mesh

	// Boundary is the exact solid region, without the coverage ramp. Outer
	// contours wind positively and holes negatively.
	Boundary ContourSet

	// BooleanFailures counts boolean operations that failed and fell back
	// to their input.
	BooleanFailures int
}

// BoundaryPath returns Boundary as a flattened path for masking. Holes are
// re-oriented to positive winding, so the path has to be filled with the
// even-odd rule.
func (r *Result) BoundaryPath() *Path {
	set := make(ContourSet, len(r.Boundary))
	for i, c := range r.Boundary {
		set[i] = boolean.NormalizeWinding(c)
	}
	return PathFromContours(set)
}

// Size returns the approximate memory held by the result in bytes.
func (r *Result) Size() int64 {
	if r == nil {
		return 0
	}
	n := int64(8 * r.Boundary.PointCount())
	if r.Mesh != nil {
		n += int64(len(r.Mesh.Indices()) * 4)
		n += int64(r.Mesh.VertexLayout().ArrayStride) * int64(r.Mesh.VertexCount())
	}
	return n
}
