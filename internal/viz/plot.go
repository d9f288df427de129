package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/vdptrail/internal/sim"
)

// PlotSeries renders x(t) and y(t) on one asciigraph chart. Long runs are
// downsampled to width columns; non-finite samples are dropped.
func PlotSeries(tr *sim.Trajectory, width, height int, caption string) string {
	if tr.Len() == 0 {
		return ""
	}
	xs := resample(tr.Xs, width)
	ys := resample(tr.Ys, width)
	if len(xs) == 0 || len(ys) == 0 {
		return ""
	}
	return asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("x(t)", "y(t)"),
	)
}

func resample(data []float64, n int) []float64 {
	step := 1
	if n > 0 && len(data) > n {
		step = len(data) / n
	}
	out := make([]float64, 0, len(data)/step+1)
	for i := 0; i < len(data); i += step {
		if v := data[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
