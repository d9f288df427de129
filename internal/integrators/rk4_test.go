package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/vdptrail/internal/dynamo"
	"github.com/san-kum/vdptrail/internal/physics"
)

type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int { return 2 }

// stageRecorder returns dx/dt = 1 and records the times it was evaluated at.
type stageRecorder struct {
	times []float64
}

func (s *stageRecorder) Derive(x dynamo.State, t float64) dynamo.State {
	s.times = append(s.times, t)
	return dynamo.State{1}
}

func (s *stageRecorder) StateDim() int { return 1 }

// linearTime has dx/dt = t, which RK4 integrates exactly.
type linearTime struct{}

func (linearTime) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{t} }
func (linearTime) StateDim() int                                 { return 1 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4StageTimes(t *testing.T) {
	rec := &stageRecorder{}
	NewRK4().Step(rec, dynamo.State{0}, 2.0, 0.5)

	want := []float64{2.0, 2.25, 2.25, 2.5}
	if len(rec.times) != len(want) {
		t.Fatalf("expected %d derivative evaluations, got %d", len(want), len(rec.times))
	}
	for i := range want {
		if rec.times[i] != want[i] {
			t.Errorf("stage %d evaluated at t=%v, want %v", i+1, rec.times[i], want[i])
		}
	}
}

func TestRK4ExactForQuadratic(t *testing.T) {
	x := NewRK4().Step(linearTime{}, dynamo.State{0}, 1.0, 1.0)
	// integral of t from 1 to 2
	if math.Abs(x[0]-1.5) > 1e-15 {
		t.Errorf("expected 1.5, got %v", x[0])
	}
}

func TestRK4SingleStepMatchesHandComputation(t *testing.T) {
	mu, h := 0.85, 0.1
	sys := physics.NewCoupledVanDerPol(mu)
	x0 := dynamo.State{0, 0, 0.5, 0.5}

	f := func(x dynamo.State) dynamo.State {
		dpx, dpy, dvx, dvy := physics.Derivative(mu, 0, x[0], x[1], x[2], x[3])
		return dynamo.State{dpx, dpy, dvx, dvy}
	}
	// x0 + c*k
	along := func(k dynamo.State, c float64) dynamo.State {
		out := make(dynamo.State, len(x0))
		for i := range x0 {
			out[i] = x0[i] + c*k[i]
		}
		return out
	}
	k1 := f(x0)
	k2 := f(along(k1, h/2))
	k3 := f(along(k2, h/2))
	k4 := f(along(k3, h))

	got := NewRK4().Step(sys, x0, 0, h)
	for i := range x0 {
		want := x0[i] + h/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
		if math.Abs(got[i]-want) > 1e-14 {
			t.Errorf("component %d: got %.17g, want %.17g", i, got[i], want)
		}
	}
}

func TestRK4DoesNotModifyInput(t *testing.T) {
	x := dynamo.State{1.0, 0.0}
	NewRK4().Step(&simpleDynamics{}, x, 0, 0.1)
	if x[0] != 1.0 || x[1] != 0.0 {
		t.Errorf("input state was modified: %v", x)
	}
}

func TestRK4PropagatesNaN(t *testing.T) {
	x := NewRK4().Step(&simpleDynamics{}, dynamo.State{math.NaN(), 0}, 0, 0.1)
	if !math.IsNaN(x[0]) || !math.IsNaN(x[1]) {
		t.Errorf("expected NaN to propagate, got %v", x)
	}
}

func TestRK4FactoryReturnsFreshSteppers(t *testing.T) {
	a, b := RK4Factory(), RK4Factory()
	if a == b {
		t.Error("each call should return its own stepper")
	}
	if _, ok := a.(*RK4); !ok {
		t.Errorf("expected *RK4, got %T", a)
	}
}

func TestRK4ResizesScratch(t *testing.T) {
	integ := NewRK4()
	integ.Step(&simpleDynamics{}, dynamo.State{1, 0}, 0, 0.1)
	x := integ.Step(physics.NewCoupledVanDerPol(0), dynamo.State{1, 0, 0, 0}, 0, 0.1)
	if len(x) != 4 {
		t.Errorf("expected 4 components after resize, got %d", len(x))
	}
}
