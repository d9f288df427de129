package dynamo

import "math"

// State holds the dynamic components of a system. Time is carried
// separately by whoever advances the state.
type State []float64

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is an autonomous or time-dependent ODE dX/dt = f(X, t).
// Derive must not retain or modify x.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Stepper advances a state by one fixed step of size dt.
type Stepper interface {
	Step(sys System, x State, t, dt float64) State
}

// Configurable exposes named scalar parameters of a system.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}
