package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/vdptrail/internal/sim"
	"github.com/san-kum/vdptrail/internal/viz"
)

// Options controls batch renderings of a trajectory.
type Options struct {
	Width       int
	Height      int
	Margin      float64
	TrailLength int
	Frame       int    // index of the head point; negative means the last point
	PathColor   string // full path, drawn faintly under the trail
	TrailColor  string
	HeadColor   string
}

func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Margin:      0.5,
		TrailLength: 5,
		Frame:       -1,
		PathColor:   "#334466",
		TrailColor:  "#3377ff",
		HeadColor:   "#ff2222",
	}
}

func (o Options) head(n int) int {
	if o.Frame < 0 || o.Frame >= n {
		return n - 1
	}
	return o.Frame
}

// TrajectorySVG draws the (x, y) path, a trail of the TrailLength points
// ending at the head with rising opacity, and the head itself.
func TrajectorySVG(tr *sim.Trajectory, opts Options) string {
	n := tr.Len()
	if n == 0 {
		return ""
	}
	b := viz.ComputeBounds(tr.Xs, tr.Ys, opts.Margin)
	w, h := opts.Width, opts.Height

	type px struct {
		x, y int
		ok   bool
	}
	project := func(i int) px {
		x, y, ok := b.Project(tr.Xs[i], tr.Ys[i], w, h)
		return px{x, y, ok}
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, w, h, w, h))

	// full path, broken at non-finite samples
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="`, opts.PathColor))
	pen := false
	for i := 0; i < n; i++ {
		p := project(i)
		if !p.ok {
			pen = false
			continue
		}
		if pen {
			sb.WriteString(fmt.Sprintf(" L%d,%d", p.x, p.y))
		} else {
			sb.WriteString(fmt.Sprintf(" M%d,%d", p.x, p.y))
			pen = true
		}
	}
	sb.WriteString("\"/>\n")

	head := opts.head(n)
	start := head - opts.TrailLength + 1
	if start < 0 {
		start = 0
	}
	count := head - start + 1
	for i := start + 1; i <= head; i++ {
		a, c := project(i-1), project(i)
		if !a.ok || !c.ok {
			continue
		}
		alpha := viz.TrailAlpha(i-start, count)
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" stroke-opacity="%.2f"/>
`, a.x, a.y, c.x, c.y, opts.TrailColor, alpha))
	}

	if p := project(head); p.ok {
		sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="5" fill="%s"/>
`, p.x, p.y, opts.HeadColor))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
