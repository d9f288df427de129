package config

import (
	"sort"

	"github.com/san-kum/vdptrail/internal/sim"
)

var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"harmonic": {
		Mu: 0, Steps: 2000, StepSize: 0.01,
		InitState: sim.Initial{Px: 1, Py: 0, Vx: 0, Vy: 1},
		Playback:  PlaybackConfig{TrailLength: 20, Margin: DefaultMargin, FPS: DefaultFPS},
	},
	"relaxed": {
		Mu: 0.2, Steps: 5000, StepSize: 0.05,
		InitState: sim.Initial{Px: 0.1, Py: -0.1, Vx: 0, Vy: 0},
		Playback:  PlaybackConfig{TrailLength: DefaultTrailLength, Margin: DefaultMargin, FPS: DefaultFPS},
	},
	"strong": {
		Mu: 1.0, Steps: 10000, StepSize: 0.05,
		InitState: sim.Initial{Px: 2, Py: 0, Vx: 0, Vy: 0.5},
		Playback:  PlaybackConfig{TrailLength: 10, Margin: DefaultMargin, FPS: DefaultFPS},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
