package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/vdptrail/internal/sim"
)

const (
	width       = 60
	height      = 22
	maxSpeed    = 64
	historySize = 120
)

type TickMsg time.Time

// PlaybackOptions configures a Playback.
type PlaybackOptions struct {
	Title       string
	TrailLength int
	Margin      float64
	FPS         int
	Theme       string
}

// Playback replays a finished trajectory as a head point with a fading
// trail, looping forever. It never mutates the trajectory it is given.
type Playback struct {
	title    string
	times    []float64
	points   []sim.Point
	bounds   Bounds
	trail    *Trail
	frame    int
	loops    int
	speed    int
	fps      int
	running  bool
	showHelp bool
	warning  string
	canvas   *Canvas
	theme    Theme
	keys     keyMap
	help     help.Model
}

func NewPlayback(tr *sim.Trajectory, opts PlaybackOptions) Playback {
	if opts.FPS < 1 {
		opts.FPS = 50
	}
	p := Playback{
		title:   opts.Title,
		times:   tr.Times,
		points:  tr.Points(),
		bounds:  ComputeBounds(tr.Xs, tr.Ys, opts.Margin),
		trail:   NewTrail(opts.TrailLength),
		speed:   1,
		fps:     opts.FPS,
		running: true,
		canvas:  NewCanvas(width, height),
		theme:   GetTheme(opts.Theme),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	if err := tr.Degeneracy(); err != nil {
		p.warning = err.Error()
	}
	return p
}

// Run plays tr in the terminal until the user quits.
func Run(tr *sim.Trajectory, opts PlaybackOptions) error {
	_, err := tea.NewProgram(NewPlayback(tr, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Playback) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Playback) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances playback.
func (m Playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.running = !m.running
		case key.Matches(msg, m.keys.Faster):
			if m.speed < maxSpeed {
				m.speed *= 2
			}
		case key.Matches(msg, m.keys.Slower):
			if m.speed > 1 {
				m.speed /= 2
			}
		case key.Matches(msg, m.keys.Restart):
			m.restart()
		case key.Matches(msg, m.keys.Theme):
			m.cycleTheme()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance(m.speed)
		}
		return m, m.tick()
	}
	return m, nil
}

// advance moves the head n frames. The trail restarts when the first point
// is shown again, so the last point of a loop stays on screen until then.
func (m *Playback) advance(n int) {
	if len(m.points) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		if m.frame >= len(m.points) {
			m.frame = 0
			m.loops++
			m.trail.Reset()
		}
		m.trail.Push(m.points[m.frame])
		m.frame++
	}
}

func (m *Playback) restart() {
	m.frame = 0
	m.loops = 0
	m.trail.Reset()
}

func (m *Playback) cycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == m.theme.Name {
			m.theme = GetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

// head is the most recently shown point and its index, or false before
// the first frame.
func (m Playback) head() (sim.Point, int, bool) {
	pts := m.trail.Points()
	if len(pts) == 0 || m.frame < 1 {
		return sim.Point{}, 0, false
	}
	return pts[len(pts)-1], m.frame - 1, true
}

// draw paints the trail as segments of rising level and the head as a
// 3x3 block.
func (m *Playback) draw() {
	m.canvas.Clear()
	cw, ch := m.canvas.SubWidth(), m.canvas.SubHeight()

	pts := m.trail.Points()
	prevX, prevY, prevOK := 0, 0, false
	for i, p := range pts {
		px, py, ok := m.bounds.Project(p.X, p.Y, cw, ch)
		if !ok {
			prevOK = false
			continue
		}
		level := TrailAlpha(i, len(pts))
		if prevOK {
			m.canvas.DrawLineLevel(prevX, prevY, px, py, level)
		} else {
			m.canvas.SetLevel(px, py, level)
		}
		prevX, prevY, prevOK = px, py, true
	}

	if hp, _, ok := m.head(); ok {
		if px, py, ok := m.bounds.Project(hp.X, hp.Y, cw, ch); ok {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					m.canvas.SetLevel(px+dx, py+dy, HeadLevel)
				}
			}
		}
	}
}

// recentX returns up to historySize x values ending at idx.
func (m Playback) recentX(idx int) []float64 {
	start := idx - historySize + 1
	if start < 0 {
		start = 0
	}
	out := make([]float64, 0, idx-start+1)
	for i := start; i <= idx; i++ {
		if v := m.points[i].X; isFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

func (m Playback) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Render(m.theme))

	var s strings.Builder
	title := m.title
	if title == "" {
		title = "VAN DER POL"
	}
	s.WriteString(headerStyle.Render(strings.ToUpper(title)) + "\n")

	switch {
	case m.warning != "":
		s.WriteString(StatusWarning.Render("DEGENERATE") + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("PLAYING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if hp, idx, ok := m.head(); ok {
		if hist := m.recentX(idx); len(hist) > 1 {
			chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("x(t)"))
			s.WriteString(graphStyle.Render(chart) + "\n\n")
		}
		s.WriteString(statRow("Time", fmt.Sprintf("%.2f", m.times[idx])))
		s.WriteString(statRow("x", fmt.Sprintf("%+.4f", hp.X)))
		s.WriteString(statRow("y", fmt.Sprintf("%+.4f", hp.Y)))
	} else {
		s.WriteString(statRow("Time", "-"))
	}
	s.WriteString(statRow("Frame", fmt.Sprintf("%d/%d", m.frame, len(m.points))))
	s.WriteString(statRow("Speed", fmt.Sprintf("%dx", m.speed)))
	s.WriteString(statRow("Loops", fmt.Sprintf("%d", m.loops)))
	s.WriteString(statRow("Trail", fmt.Sprintf("%d", m.trail.Cap())))
	s.WriteString(statRow("Theme", m.theme.Name))

	progress := 0.0
	if len(m.points) > 0 {
		progress = float64(m.frame) / float64(len(m.points))
	}
	s.WriteString("\n" + ProgressBar(progress, 30) + "\n")
	if m.warning != "" {
		s.WriteString(StatusWarning.Render(m.warning) + "\n")
	}
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
