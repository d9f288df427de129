package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/san-kum/vdptrail/internal/config"
	"github.com/san-kum/vdptrail/internal/viz"
)

var (
	configFile string
	preset     string
	mu         float64
	steps      int
	dt         float64
	t0         float64
	px0        float64
	py0        float64
	vx0        float64
	vy0        float64
	trail      int
	margin     float64
	fps        int
	// run
	savePath string
	// play
	theme string
	// export
	frame     int
	imgWidth  int
	imgHeight int
)

func addRunFlags(fs *pflag.FlagSet) {
	def := config.DefaultConfig()
	fs.StringVar(&configFile, "config", "", "config file path (yaml)")
	fs.StringVar(&preset, "preset", "", "use preset configuration")
	fs.Float64Var(&mu, "mu", def.Mu, "coupling constant")
	fs.IntVar(&steps, "steps", def.Steps, "number of steps")
	fs.Float64Var(&dt, "dt", def.StepSize, "step size")
	fs.Float64Var(&t0, "t0", def.InitState.T, "initial time")
	fs.Float64Var(&px0, "px0", def.InitState.Px, "initial x position")
	fs.Float64Var(&py0, "py0", def.InitState.Py, "initial y position")
	fs.Float64Var(&vx0, "vx0", def.InitState.Vx, "initial x velocity")
	fs.Float64Var(&vy0, "vy0", def.InitState.Vy, "initial y velocity")
	fs.IntVar(&trail, "trail", def.Playback.TrailLength, "trail length in points")
	fs.Float64Var(&margin, "margin", def.Playback.Margin, "axis margin")
	fs.IntVar(&fps, "fps", def.Playback.FPS, "playback frame rate")
}

// resolveConfig layers defaults, then a preset or config file, then any
// flag the user set explicitly.
func resolveConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.DefaultConfig()

	switch {
	case preset != "" && configFile != "":
		return nil, fmt.Errorf("--preset and --config are mutually exclusive")
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	case configFile != "":
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	overrides := map[string]func(){
		"mu":     func() { cfg.Mu = mu },
		"steps":  func() { cfg.Steps = steps },
		"dt":     func() { cfg.StepSize = dt },
		"t0":     func() { cfg.InitState.T = t0 },
		"px0":    func() { cfg.InitState.Px = px0 },
		"py0":    func() { cfg.InitState.Py = py0 },
		"vx0":    func() { cfg.InitState.Vx = vx0 },
		"vy0":    func() { cfg.InitState.Vy = vy0 },
		"trail":  func() { cfg.Playback.TrailLength = trail },
		"margin": func() { cfg.Playback.Margin = margin },
		"fps":    func() { cfg.Playback.FPS = fps },
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func themeNames() []string {
	return viz.ThemeNames()
}
