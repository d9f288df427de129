package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// HeadLevel marks cells that belong to the playback head rather than the
// trail.
const HeadLevel = 2.0

// Canvas is a Braille canvas. Each character cell also remembers the
// brightest level drawn into it, which picks its colour on Render.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Level         [][]float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Level:  make([][]float64, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Level[i] = make([]float64, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight give the canvas size in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set sets a pixel at (x, y) in sub-pixel coordinates at full level.
func (c *Canvas) Set(x, y int) {
	c.SetLevel(x, y, 1)
}

// SetLevel sets a pixel and raises its cell level to at least level.
func (c *Canvas) SetLevel(x, y int, level float64) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if level > c.Level[row][col] {
		c.Level[row][col] = level
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	mask := ^rune(pixelMap[y%4][x%2])
	c.Grid[row][col] &= mask
	if c.Grid[row][col] < brailleBlank {
		c.Grid[row][col] = brailleBlank
	}
	if c.Grid[row][col] == brailleBlank {
		c.Level[row][col] = 0
	}
}

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Level[i][j] = 0
		}
	}
}

// DrawLine draws a full-level line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.DrawLineLevel(x0, y0, x1, y1, 1)
}

func (c *Canvas) DrawLineLevel(x0, y0, x1, y1 int, level float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetLevel(x0, y0, level)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the canvas with each cell coloured by its level.
func (c *Canvas) Render(theme Theme) string {
	head := lipgloss.NewStyle().Foreground(theme.Head).Bold(true)
	styles := make(map[int]lipgloss.Style)

	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			level := c.Level[i][j]
			switch {
			case r == brailleBlank:
				b.WriteRune(r)
			case level >= HeadLevel:
				b.WriteString(head.Render(string(r)))
			default:
				// quantise so a frame needs at most ten trail styles
				bucket := int(level * 10)
				st, ok := styles[bucket]
				if !ok {
					st = lipgloss.NewStyle().Foreground(theme.Fade(float64(bucket) / 10))
					styles[bucket] = st
				}
				b.WriteString(st.Render(string(r)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
