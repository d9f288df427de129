package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/vdptrail/internal/sim"
	"github.com/san-kum/vdptrail/internal/viz"
)

var errNoFinitePoints = errors.New("export: trajectory has no finite points")

// WritePNG renders y against x with the trail and head of opts as a PNG.
// Non-finite samples are left out; the axes follow viz.ComputeBounds.
func WritePNG(w io.Writer, tr *sim.Trajectory, title string, opts Options) error {
	n := tr.Len()
	path := finiteXYs(tr, 0, n)
	if len(path) == 0 {
		return errNoFinitePoints
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x(t)"
	p.Y.Label.Text = "y(t)"

	b := viz.ComputeBounds(tr.Xs, tr.Ys, opts.Margin)
	p.X.Min, p.X.Max = b.MinX, b.MaxX
	p.Y.Min, p.Y.Max = b.MinY, b.MaxY

	line, err := plotter.NewLine(path)
	if err != nil {
		return fmt.Errorf("path: %w", err)
	}
	line.LineStyle.Width = vg.Points(0.5)
	line.LineStyle.Color = hexColor(opts.PathColor, 255)
	p.Add(line)

	head := opts.head(n)
	start := head - opts.TrailLength + 1
	if start < 0 {
		start = 0
	}
	count := head - start + 1
	for i := start + 1; i <= head; i++ {
		seg := finiteXYs(tr, i-1, i+1)
		if len(seg) != 2 {
			continue
		}
		l, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("trail: %w", err)
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = hexColor(opts.TrailColor, uint8(255*viz.TrailAlpha(i-start, count)))
		p.Add(l)
	}

	if pt := finiteXYs(tr, head, head+1); len(pt) == 1 {
		s, err := plotter.NewScatter(pt)
		if err != nil {
			return fmt.Errorf("head: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Color = hexColor(opts.HeadColor, 255)
		p.Add(s)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)*vg.Inch/96, vg.Length(opts.Height)*vg.Inch/96),
		vgimg.UseDPI(96),
	)
	p.Draw(draw.New(c))

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}

func finiteXYs(tr *sim.Trajectory, from, to int) plotter.XYs {
	pts := make(plotter.XYs, 0, to-from)
	for i := from; i < to; i++ {
		x, y := tr.Xs[i], tr.Ys[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

func hexColor(hex string, alpha uint8) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{A: alpha}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
