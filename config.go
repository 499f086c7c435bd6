package aamesh

import (
	"fmt"
	"io"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/aamesh/internal/boolean"
	"github.com/gogpu/aamesh/internal/flatten"
)

// Default engine constants.
const (
	DefaultFlattenTolerance float32 = flatten.DefaultTolerance
	DefaultMiterLimit       float32 = boolean.DefaultMiterLimit
	DefaultSimplifyEpsilon  float32 = boolean.DefaultSimplifyEpsilon
	DefaultAAFeather        float32 = 1.0
	DefaultClipperScale     float32 = boolean.DefaultScale
)

// Config holds the numeric constants of the geometry pipeline. The zero
// value is not valid; start from DefaultConfig.
//
// A Config can be loaded from TOML:
//
//	flatten_tolerance = 0.05
//	miter_limit = 4.0
//	simplify_epsilon = 0.05
//	aa_feather = 1.0
//	clipper_scale = 1024
type Config struct {
	// FlattenTolerance is the maximum distance between a curve and its
	// polyline, in path units. It also bounds round join and cap arcs.
	FlattenTolerance float32 `toml:"flatten_tolerance"`

	// MiterLimit is the miter ratio for offset joins.
	MiterLimit float32 `toml:"miter_limit"`

	// SimplifyEpsilon is the distance below which offset vertices merge.
	// Zero disables simplification.
	SimplifyEpsilon float32 `toml:"simplify_epsilon"`

	// AAFeather is the width of the coverage ramp in device pixels.
	AAFeather float32 `toml:"aa_feather"`

	// ClipperScale converts path units to the clipper's integer grid.
	ClipperScale float32 `toml:"clipper_scale"`
}

// DefaultConfig returns the standard engine constants.
func DefaultConfig() Config {
	return Config{
		FlattenTolerance: DefaultFlattenTolerance,
		MiterLimit:       DefaultMiterLimit,
		SimplifyEpsilon:  DefaultSimplifyEpsilon,
		AAFeather:        DefaultAAFeather,
		ClipperScale:     DefaultClipperScale,
	}
}

// Validate reports the first field holding an unusable value.
func (c Config) Validate() error {
	switch {
	case !positive(c.FlattenTolerance):
		return fmt.Errorf("%w: flatten_tolerance %v must be positive", ErrInvalidConfig, c.FlattenTolerance)
	case !positive(c.MiterLimit) || c.MiterLimit < 1:
		return fmt.Errorf("%w: miter_limit %v must be at least 1", ErrInvalidConfig, c.MiterLimit)
	case c.SimplifyEpsilon < 0 || math32.IsNaN(c.SimplifyEpsilon) || math32.IsInf(c.SimplifyEpsilon, 0):
		return fmt.Errorf("%w: simplify_epsilon %v must be non-negative", ErrInvalidConfig, c.SimplifyEpsilon)
	case !positive(c.AAFeather):
		return fmt.Errorf("%w: aa_feather %v must be positive", ErrInvalidConfig, c.AAFeather)
	case !positive(c.ClipperScale):
		return fmt.Errorf("%w: clipper_scale %v must be positive", ErrInvalidConfig, c.ClipperScale)
	}
	return nil
}

// LoadConfig decodes a TOML document over DefaultConfig and validates the
// result. Keys missing from the document keep their defaults; unknown keys
// are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("aamesh: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// positive reports a finite value greater than zero.
func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1)
}
