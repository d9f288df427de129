package viz

import "math"

// Bounds is the plotting window in model coordinates.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ComputeBounds takes the min/max of the finite values of xs and ys and
// widens each side by margin. Non-finite samples are ignored so one blown-up
// point cannot flatten the rest of the plot. With no finite samples the
// window is the unit box around the origin.
func ComputeBounds(xs, ys []float64, margin float64) Bounds {
	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	found := false
	for i := 0; i < len(xs) && i < len(ys); i++ {
		x, y := xs[i], ys[i]
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		found = true
		b.MinX, b.MaxX = math.Min(b.MinX, x), math.Max(b.MaxX, x)
		b.MinY, b.MaxY = math.Min(b.MinY, y), math.Max(b.MaxY, y)
	}
	if !found {
		return Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	}

	b.MinX -= margin
	b.MaxX += margin
	b.MinY -= margin
	b.MaxY += margin

	if b.MaxX-b.MinX == 0 {
		b.MinX, b.MaxX = b.MinX-0.5, b.MaxX+0.5
	}
	if b.MaxY-b.MinY == 0 {
		b.MinY, b.MaxY = b.MinY-0.5, b.MaxY+0.5
	}
	return b
}

// Project maps (x, y) onto a w by h pixel grid with y pointing down.
// ok is false for non-finite points, points outside the window, and
// windows too wide to scale into.
func (b Bounds) Project(x, y float64, w, h int) (px, py int, ok bool) {
	if !isFinite(x) || !isFinite(y) || w < 1 || h < 1 {
		return 0, 0, false
	}
	fx := (x - b.MinX) / (b.MaxX - b.MinX)
	fy := (y - b.MinY) / (b.MaxY - b.MinY)
	if !(fx >= 0 && fx <= 1) || !(fy >= 0 && fy <= 1) {
		return 0, 0, false
	}
	px = int(math.Round(fx * float64(w-1)))
	py = (h - 1) - int(math.Round(fy*float64(h-1)))
	return px, py, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
