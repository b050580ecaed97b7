package config

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSubsteps   = 100
	DefaultFriction   = 0.0
	DefaultFade       = 10.0
	DefaultIntegrator = "rk4"
)

type Config struct {
	G          float64      `yaml:"g"`
	Softening  float64      `yaml:"softening"`
	Bounce     float64      `yaml:"bounce"`
	Friction   float64      `yaml:"friction"`
	Half       float64      `yaml:"half"`
	Substeps   int          `yaml:"substeps"`
	Integrator string       `yaml:"integrator"`
	Fade       float64      `yaml:"fade"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Pos [2]float64 `yaml:"pos,flow"`
	Vel [2]float64 `yaml:"vel,flow"`
}

// Default is the reference configuration: three moving stars and a fourth
// one at rest at the origin.
func Default() *Config {
	return &Config{
		G:          physics.DefaultG,
		Softening:  physics.DefaultSoftening,
		Bounce:     physics.DefaultBounce,
		Friction:   DefaultFriction,
		Half:       physics.DefaultHalf,
		Substeps:   DefaultSubsteps,
		Integrator: DefaultIntegrator,
		Fade:       DefaultFade,
		Bodies: []BodyConfig{
			{Pos: [2]float64{-0.5, -0.5}, Vel: [2]float64{0.1, 0.1}},
			{Pos: [2]float64{0.5, -0.5}, Vel: [2]float64{-0.1, 0.1}},
			{Pos: [2]float64{0.0, 0.5}, Vel: [2]float64{0.2, 0.1}},
			{Pos: [2]float64{0.0, 0.0}, Vel: [2]float64{0.0, 0.0}},
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, Default())
}

// LoadOver reads path and overlays it on a copy of base. Fields missing
// from the file keep the base value; a bodies list replaces the base one.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	switch {
	case len(c.Bodies) == 0:
		return fmt.Errorf("%w: at least one body is required", dynamo.ErrParameterBounds)
	case c.Substeps < 1:
		return fmt.Errorf("%w: substeps must be >= 1, got %d", dynamo.ErrParameterBounds, c.Substeps)
	case c.Softening <= 0:
		return fmt.Errorf("%w: softening must be positive, got %f", dynamo.ErrParameterBounds, c.Softening)
	case c.Half <= 0:
		return fmt.Errorf("%w: half must be positive, got %f", dynamo.ErrParameterBounds, c.Half)
	case c.Bounce < 0:
		return fmt.Errorf("%w: bounce must be non-negative, got %f", dynamo.ErrParameterBounds, c.Bounce)
	case c.Friction < 0:
		return fmt.Errorf("%w: friction must be non-negative, got %f", dynamo.ErrParameterBounds, c.Friction)
	case c.Fade < 0:
		return fmt.Errorf("%w: fade must be non-negative, got %f", dynamo.ErrParameterBounds, c.Fade)
	}
	return nil
}

// BodySet builds the initial state. Every body is listed explicitly.
func (c *Config) BodySet() dynamo.BodySet {
	s := dynamo.NewBodySet(len(c.Bodies))
	for i, b := range c.Bodies {
		s[i].Pos = dynamo.Vec{X: b.Pos[0], Y: b.Pos[1]}
		s[i].Vel = dynamo.Vec{X: b.Vel[0], Y: b.Vel[1]}
	}
	return s
}

func (c *Config) Gravity() *physics.Gravity {
	return &physics.Gravity{G: c.G, Softening: c.Softening}
}

func (c *Config) Box() *physics.Box {
	return &physics.Box{Half: c.Half, Bounce: c.Bounce}
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Bodies = append([]BodyConfig(nil), c.Bodies...)
	return &cp
}
