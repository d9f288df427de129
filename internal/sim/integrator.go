package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/vdptrail/internal/dynamo"
	"github.com/san-kum/vdptrail/internal/integrators"
	"github.com/san-kum/vdptrail/internal/physics"
)

// Integrator advances a four-component system [px, py, vx, vy] with a
// fixed-step stepper and records the (t, px, py) history. Every Advance
// call builds its own stepper, so one Integrator may be advanced from
// several goroutines at once.
type Integrator struct {
	sys        dynamo.System
	newStepper func() dynamo.Stepper
	init       Initial
}

func New(sys dynamo.System, newStepper func() dynamo.Stepper, init Initial) *Integrator {
	return &Integrator{
		sys:        sys,
		newStepper: newStepper,
		init:       init,
	}
}

// NewVanDerPol builds an RK4 integrator for the coupled Van der Pol system.
func NewVanDerPol(mu float64, init Initial) *Integrator {
	return New(physics.NewCoupledVanDerPol(mu), integrators.RK4Factory, init)
}

// Params reports the system parameters, or nil if the system has none.
func (in *Integrator) Params() map[string]float64 {
	if c, ok := in.sys.(dynamo.Configurable); ok {
		return c.Params()
	}
	return nil
}

// Advance runs steps fixed steps of size h from the initial state. Entry i
// of the result is the state after step i+1, at time t0+(i+1)*h.
// Non-finite values are passed through to the result unchanged.
func (in *Integrator) Advance(steps int, h float64) (*Trajectory, error) {
	if err := validate(steps, h); err != nil {
		return nil, err
	}
	if in.sys.StateDim() != 4 {
		return nil, fmt.Errorf("system has %d components, want 4: %w", in.sys.StateDim(), dynamo.ErrDimensionMismatch)
	}

	tr := &Trajectory{
		Times: make([]float64, steps),
		Xs:    make([]float64, steps),
		Ys:    make([]float64, steps),
	}

	stepper := in.newStepper()
	x := in.init.state()
	t0 := in.init.T
	t := t0

	for i := 0; i < steps; i++ {
		x = stepper.Step(in.sys, x, t, h)
		t = t0 + float64(i+1)*h

		tr.Times[i] = t
		tr.Xs[i] = x[0]
		tr.Ys[i] = x[1]
	}

	return tr, nil
}

func validate(steps int, h float64) error {
	if steps < 0 {
		return fmt.Errorf("step count must be non-negative, got %d: %w", steps, dynamo.ErrInvalidArgument)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("step size must be finite, got %v: %w", h, dynamo.ErrInvalidArgument)
	}
	if h <= 0 {
		return fmt.Errorf("step size must be positive, got %v: %w", h, dynamo.ErrInvalidArgument)
	}
	return nil
}
