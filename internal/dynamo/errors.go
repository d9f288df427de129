package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidArgument indicates a run was requested with a negative step
	// count or a non-positive or non-finite step size.
	ErrInvalidArgument = errors.New("dynamo: invalid argument")

	// ErrParameterBounds indicates a parameter name or value is not accepted.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrNumericDegeneracy marks a trajectory that went non-finite. The
	// integrator never returns it; renderers use it to report what they drew.
	ErrNumericDegeneracy = errors.New("dynamo: trajectory contains non-finite values")
)

// DegeneracyError locates the first non-finite sample of a trajectory.
type DegeneracyError struct {
	Index int
	Time  float64
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("%v (first at index %d, t=%.4f)", ErrNumericDegeneracy, e.Index, e.Time)
}

func (e *DegeneracyError) Unwrap() error {
	return ErrNumericDegeneracy
}
