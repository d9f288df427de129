package viz

import "github.com/san-kum/vdptrail/internal/sim"

// Trail keeps the most recent points of a playback in a fixed-size ring.
type Trail struct {
	buf   []sim.Point
	start int
	n     int
}

func NewTrail(length int) *Trail {
	if length < 1 {
		length = 1
	}
	return &Trail{buf: make([]sim.Point, length)}
}

func (t *Trail) Cap() int { return len(t.buf) }
func (t *Trail) Len() int { return t.n }

// Push appends p, dropping the oldest point once the trail is full.
func (t *Trail) Push(p sim.Point) {
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

// Points returns the trail oldest first.
func (t *Trail) Points() []sim.Point {
	out := make([]sim.Point, t.n)
	for i := range out {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}

func (t *Trail) Reset() {
	t.start, t.n = 0, 0
}

// TrailAlpha is the opacity of point i of n, rising linearly from 0.1 at
// the oldest point to 1 at the newest.
func TrailAlpha(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 0.1 + 0.9*float64(i)/float64(n-1)
}
