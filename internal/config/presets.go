package config

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/threebody/internal/dynamo"
)

var Presets = map[string]func() *Config{
	"reference": Default,
	"triangle": func() *Config {
		cfg := Default()
		cfg.Bodies = cfg.Bodies[:3]
		return cfg
	},
	"binary": func() *Config {
		cfg := Default()
		// 0.8 apart, above the softening floor, circular about the origin
		v := math.Sqrt(0.4 / (0.8 * 0.8))
		cfg.Bodies = []BodyConfig{
			{Pos: [2]float64{-0.4, 0}, Vel: [2]float64{0, -v}},
			{Pos: [2]float64{0.4, 0}, Vel: [2]float64{0, v}},
		}
		return cfg
	},
	"central": func() *Config {
		cfg := Default()
		cfg.Bodies = []BodyConfig{{}}
		for k := 0; k < 3; k++ {
			angle := float64(k) * 2 * math.Pi / 3
			cfg.Bodies = append(cfg.Bodies, BodyConfig{
				Pos: [2]float64{0.6 * math.Cos(angle), 0.6 * math.Sin(angle)},
				Vel: [2]float64{-0.8 * math.Sin(angle), 0.8 * math.Cos(angle)},
			})
		}
		return cfg
	},
}

func GetPreset(name string) (*Config, error) {
	fn, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownPreset, name, ListPresets())
	}
	return fn(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
