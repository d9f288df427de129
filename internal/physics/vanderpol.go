package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/vdptrail/internal/dynamo"
)

// DefaultMu is the coupling constant of the reference configuration.
const DefaultMu = 0.85

// CoupledVanDerPol is a Van der Pol oscillator x driving a second
// oscillator y through the damping term.
// State: [px, py, vx, vy]
// Equations:
//
//	dpx/dt = vx
//	dvx/dt = μ(1 - px²)vx - px
//	dpy/dt = vy
//	dvy/dt = μ(1 - px²)vy - py
//
// The damping of y is driven by px, not py.
type CoupledVanDerPol struct {
	Mu float64
}

func NewCoupledVanDerPol(mu float64) *CoupledVanDerPol {
	return &CoupledVanDerPol{Mu: mu}
}

func (v *CoupledVanDerPol) StateDim() int { return 4 }

func (v *CoupledVanDerPol) Derive(x dynamo.State, t float64) dynamo.State {
	dpx, dpy, dvx, dvy := Derivative(v.Mu, t, x[0], x[1], x[2], x[3])
	return dynamo.State{dpx, dpy, dvx, dvy}
}

// Derivative evaluates the right-hand side at (t, px, py, vx, vy).
func Derivative(mu, _, px, py, vx, vy float64) (dpx, dpy, dvx, dvy float64) {
	damp := mu * (1 - px*px)
	dpx = vx
	dpy = vy
	dvx = damp*vx - px
	dvy = damp*vy - py
	return
}

// Params implements dynamo.Configurable
func (v *CoupledVanDerPol) Params() map[string]float64 {
	return map[string]float64{
		"mu": v.Mu,
	}
}

// SetParam implements dynamo.Configurable
func (v *CoupledVanDerPol) SetParam(name string, value float64) error {
	if name != "mu" {
		return fmt.Errorf("unknown parameter %q: %w", name, dynamo.ErrParameterBounds)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("mu=%v: %w", value, dynamo.ErrParameterBounds)
	}
	v.Mu = value
	return nil
}
