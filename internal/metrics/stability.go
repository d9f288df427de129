package metrics

import (
	"math"

	"github.com/san-kum/vdptrail/internal/sim"
)

// Stability is the fraction of samples whose positions stay within
// threshold in absolute value. Non-finite samples count as violations.
type Stability struct {
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{threshold: threshold}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(x, y float64) {
	s.samples++
	if !(math.Abs(x) < s.threshold) || !(math.Abs(y) < s.threshold) {
		s.violations++
	}
}

// ObserveAll feeds every point of tr.
func (s *Stability) ObserveAll(tr *sim.Trajectory) {
	for i := 0; i < tr.Len(); i++ {
		s.Observe(tr.Xs[i], tr.Ys[i])
	}
}

func (s *Stability) Violations() int { return s.violations }

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
