package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/forcelab/internal/mechanics"
)

const (
	DefaultMass      = 10.0
	DefaultNumForces = 3
	DefaultForce     = 10.0

	DefaultInclineAngle = 30.0
	DefaultInclineMuS   = 0.3
	DefaultInclineMuK   = 0.2

	DefaultApplied    = 50.0
	DefaultAppliedMuS = 0.4
	DefaultAppliedMuK = 0.3

	DefaultScale          = 1.0
	DefaultForceColor     = "#1f77b4"
	DefaultResultantColor = "#ff0000"

	MinMass   = 0.1
	MaxForces = 10
	MinScale  = 0.1
	MaxScale  = 2.0
)

type Config struct {
	Problem string        `yaml:"problem"`
	Mass    float64       `yaml:"mass"`
	Forces  []ForceConfig `yaml:"forces"`
	Incline InclineConfig `yaml:"incline"`
	Applied AppliedConfig `yaml:"applied"`
	Plot    PlotConfig    `yaml:"plot"`
}

type ForceConfig struct {
	Magnitude float64 `yaml:"magnitude"`
	Angle     float64 `yaml:"angle"`
}

type InclineConfig struct {
	Angle     float64 `yaml:"angle"`
	MuStatic  float64 `yaml:"mu_static"`
	MuKinetic float64 `yaml:"mu_kinetic"`
}

type AppliedConfig struct {
	Magnitude float64 `yaml:"magnitude"`
	Angle     float64 `yaml:"angle"`
	MuStatic  float64 `yaml:"mu_static"`
	MuKinetic float64 `yaml:"mu_kinetic"`
}

type PlotConfig struct {
	Show           bool    `yaml:"show"`
	Scale          float64 `yaml:"scale"`
	ForceColor     string  `yaml:"force_color"`
	ResultantColor string  `yaml:"resultant_color"`
}

func DefaultConfig() *Config {
	forces := make([]ForceConfig, DefaultNumForces)
	for i := range forces {
		forces[i] = ForceConfig{Magnitude: DefaultForce}
	}
	return &Config{
		Problem: "forces",
		Mass:    DefaultMass,
		Forces:  forces,
		Incline: InclineConfig{
			Angle:     DefaultInclineAngle,
			MuStatic:  DefaultInclineMuS,
			MuKinetic: DefaultInclineMuK,
		},
		Applied: AppliedConfig{
			Magnitude: DefaultApplied,
			MuStatic:  DefaultAppliedMuS,
			MuKinetic: DefaultAppliedMuK,
		},
		Plot: PlotConfig{
			Show:           true,
			Scale:          DefaultScale,
			ForceColor:     DefaultForceColor,
			ResultantColor: DefaultResultantColor,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ForceSystem converts the configured forces for the engine.
func (c *Config) ForceSystem() mechanics.ForceSystem {
	fs := make(mechanics.ForceSystem, len(c.Forces))
	for i, f := range c.Forces {
		fs[i] = mechanics.Force{Magnitude: f.Magnitude, Angle: f.Angle}
	}
	return fs
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Forces = append([]ForceConfig(nil), c.Forces...)
	return &cp
}

// Validate applies the input bounds of the problem forms. The engine itself
// accepts any values; these limits only guard user input.
func (c *Config) Validate() error {
	if c.Mass < MinMass {
		return &mechanics.ParamError{Field: "mass", Value: c.Mass, Wrapped: mechanics.ErrInvalidMass}
	}
	switch c.Problem {
	case "forces":
		if n := len(c.Forces); n < 1 || n > MaxForces {
			return fmt.Errorf("forces: need between 1 and %d forces, got %d", MaxForces, n)
		}
	case "incline":
		if c.Incline.Angle < 0 || c.Incline.Angle > 90 {
			return boundsError("incline.angle", c.Incline.Angle)
		}
		if c.Incline.MuStatic < 0 {
			return boundsError("incline.mu_static", c.Incline.MuStatic)
		}
		if c.Incline.MuKinetic < 0 {
			return boundsError("incline.mu_kinetic", c.Incline.MuKinetic)
		}
	case "friction":
		if c.Applied.MuStatic < 0 {
			return boundsError("applied.mu_static", c.Applied.MuStatic)
		}
		if c.Applied.MuKinetic < 0 {
			return boundsError("applied.mu_kinetic", c.Applied.MuKinetic)
		}
	default:
		return fmt.Errorf("%w: %s", mechanics.ErrUnknownProblem, c.Problem)
	}
	if c.Plot.Scale < MinScale || c.Plot.Scale > MaxScale {
		return boundsError("plot.scale", c.Plot.Scale)
	}
	return nil
}

var ErrOutOfBounds = errors.New("config: value out of bounds")

func boundsError(field string, v float64) error {
	return &mechanics.ParamError{Field: field, Value: v, Wrapped: ErrOutOfBounds}
}
