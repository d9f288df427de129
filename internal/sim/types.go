package sim

import "github.com/san-kum/vdptrail/internal/dynamo"

// Initial is the state an Integrator starts every run from.
type Initial struct {
	T  float64 `yaml:"t0"`
	Px float64 `yaml:"px0"`
	Py float64 `yaml:"py0"`
	Vx float64 `yaml:"vx0"`
	Vy float64 `yaml:"vy0"`
}

func (in Initial) state() dynamo.State {
	return dynamo.State{in.Px, in.Py, in.Vx, in.Vy}
}

// Point is one (x, y) sample of a trajectory.
type Point struct {
	X, Y float64
}

// Trajectory is the output of a run: index-aligned times and positions,
// one entry per completed step. Velocities are not reported.
type Trajectory struct {
	Times []float64
	Xs    []float64
	Ys    []float64
}

func (tr *Trajectory) Len() int {
	if tr == nil {
		return 0
	}
	return len(tr.Times)
}

// Points returns the (x, y) pairs in run order.
func (tr *Trajectory) Points() []Point {
	pts := make([]Point, tr.Len())
	for i := range pts {
		pts[i] = Point{X: tr.Xs[i], Y: tr.Ys[i]}
	}
	return pts
}

// FirstNonFinite returns the index of the first sample whose position is
// NaN or infinite, or -1 if the whole trajectory is finite.
func (tr *Trajectory) FirstNonFinite() int {
	for i := 0; i < tr.Len(); i++ {
		if !(dynamo.State{tr.Xs[i], tr.Ys[i]}).IsValid() {
			return i
		}
	}
	return -1
}

// Degeneracy reports a *dynamo.DegeneracyError for the first non-finite
// sample, or nil.
func (tr *Trajectory) Degeneracy() error {
	i := tr.FirstNonFinite()
	if i < 0 {
		return nil
	}
	return &dynamo.DegeneracyError{Index: i, Time: tr.Times[i]}
}
