package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vdptrail/internal/dynamo"
	"github.com/san-kum/vdptrail/internal/physics"
	"github.com/san-kum/vdptrail/internal/sim"
)

const (
	DefaultSteps       = 10000
	DefaultStepSize    = 0.1
	DefaultVx          = 0.5
	DefaultVy          = 0.5
	DefaultTrailLength = 5
	DefaultMargin      = 0.5
	DefaultFPS         = 50
)

type Config struct {
	Mu        float64        `yaml:"mu"`
	Steps     int            `yaml:"steps"`
	StepSize  float64        `yaml:"step_size"`
	InitState sim.Initial    `yaml:"init_state"`
	Playback  PlaybackConfig `yaml:"playback"`
}

type PlaybackConfig struct {
	TrailLength int     `yaml:"trail_length"`
	Margin      float64 `yaml:"margin"`
	FPS         int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Mu:       physics.DefaultMu,
		Steps:    DefaultSteps,
		StepSize: DefaultStepSize,
		InitState: sim.Initial{
			Vx: DefaultVx,
			Vy: DefaultVy,
		},
		Playback: PlaybackConfig{
			TrailLength: DefaultTrailLength,
			Margin:      DefaultMargin,
			FPS:         DefaultFPS,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks what a run needs before any computation starts.
func (c *Config) Validate() error {
	if !isFinite(c.Mu) {
		return fmt.Errorf("mu must be finite, got %v: %w", c.Mu, dynamo.ErrInvalidArgument)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d: %w", c.Steps, dynamo.ErrInvalidArgument)
	}
	if !isFinite(c.StepSize) || c.StepSize <= 0 {
		return fmt.Errorf("step_size must be positive and finite, got %v: %w", c.StepSize, dynamo.ErrInvalidArgument)
	}
	init := c.InitState
	for _, v := range []float64{init.T, init.Px, init.Py, init.Vx, init.Vy} {
		if !isFinite(v) {
			return fmt.Errorf("initial state must be finite, got %+v: %w", init, dynamo.ErrInvalidArgument)
		}
	}
	if c.Playback.TrailLength < 1 {
		return fmt.Errorf("trail_length must be at least 1, got %d: %w", c.Playback.TrailLength, dynamo.ErrInvalidArgument)
	}
	if c.Playback.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d: %w", c.Playback.FPS, dynamo.ErrInvalidArgument)
	}
	if !isFinite(c.Playback.Margin) || c.Playback.Margin < 0 {
		return fmt.Errorf("margin must be non-negative, got %v: %w", c.Playback.Margin, dynamo.ErrInvalidArgument)
	}
	return nil
}

// Integrator builds the RK4 integrator described by c.
func (c *Config) Integrator() *sim.Integrator {
	return sim.NewVanDerPol(c.Mu, c.InitState)
}

// Duration is the simulated time covered by a run.
func (c *Config) Duration() float64 {
	return float64(c.Steps) * c.StepSize
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
