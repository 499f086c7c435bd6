package aamesh

import (
	"errors"

	"github.com/gogpu/aamesh/internal/boolean"
	"github.com/gogpu/aamesh/internal/dash"
)

var (
	// ErrInvalidScale is returned when a scale factor is not a positive
	// finite number.
	ErrInvalidScale = errors.New("aamesh: scale factor must be positive and finite")

	// ErrNilPath is returned when a draw call has no path.
	ErrNilPath = errors.New("aamesh: nil path")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("aamesh: invalid config")

	// ErrInvalidDashPattern is returned for an empty dash pattern or one
	// holding a non-positive length.
	ErrInvalidDashPattern = dash.ErrInvalidPattern

	// ErrBooleanOpFailed marks a failed polygon operation. The pipeline
	// never returns it; failures are counted in Result.BooleanFailures.
	ErrBooleanOpFailed = boolean.ErrBooleanOpFailed
)
