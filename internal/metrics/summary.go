package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/vdptrail/internal/sim"
)

// Summary describes the extent of a trajectory. Extremes are taken over
// finite samples only; NonFinite counts the samples that were skipped.
type Summary struct {
	Samples   int
	NonFinite int
	Start     float64
	End       float64
	MinX      float64
	MaxX      float64
	MinY      float64
	MaxY      float64
	PeakX     float64
	PeakY     float64
}

// Summarize reduces tr without modifying it. An empty or fully degenerate
// trajectory yields zero extremes.
func Summarize(tr *sim.Trajectory) Summary {
	s := Summary{Samples: tr.Len()}
	if s.Samples == 0 {
		return s
	}
	s.Start, s.End = tr.Times[0], tr.Times[s.Samples-1]

	xs := make([]float64, 0, s.Samples)
	ys := make([]float64, 0, s.Samples)
	for i := 0; i < s.Samples; i++ {
		x, y := tr.Xs[i], tr.Ys[i]
		if !isFinite(x) || !isFinite(y) {
			s.NonFinite++
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) == 0 {
		return s
	}

	s.MinX, s.MaxX = floats.Min(xs), floats.Max(xs)
	s.MinY, s.MaxY = floats.Min(ys), floats.Max(ys)
	s.PeakX = math.Max(math.Abs(s.MinX), math.Abs(s.MaxX))
	s.PeakY = math.Max(math.Abs(s.MinY), math.Abs(s.MaxY))
	return s
}

// Degenerate reports whether any sample was non-finite.
func (s Summary) Degenerate() bool { return s.NonFinite > 0 }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
