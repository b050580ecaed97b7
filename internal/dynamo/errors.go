package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a body set containing NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidTimestep indicates a negative, NaN or infinite frame time.
	ErrInvalidTimestep = errors.New("dynamo: timestep must be finite and non-negative")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrDimensionMismatch indicates body sets of different lengths were combined.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between body sets")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")
)

// SimulationError wraps an error with the frame it happened on.
type SimulationError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %v", e.Frame, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

// MustMatch panics when the given sets do not all have the length of the first.
func MustMatch(sets ...BodySet) {
	if len(sets) == 0 {
		return
	}
	n := len(sets[0])
	for _, s := range sets[1:] {
		if len(s) != n {
			panic(fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, n, len(s)))
		}
	}
}
