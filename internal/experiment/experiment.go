package experiment

import (
	"io"

	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/sim"
)

// Build wires a simulator for cfg using the named integrator, or the one
// in cfg when integrator is empty. diag receives the per-frame energy line.
func Build(r *Registry, cfg *config.Config, integrator string, diag io.Writer) (*sim.Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if integrator == "" {
		integrator = cfg.Integrator
	}

	box := cfg.Box()
	stepper, err := r.GetStepper(integrator, box)
	if err != nil {
		return nil, err
	}

	opts := sim.Options{
		Substeps:    cfg.Substeps,
		Friction:    cfg.Friction,
		Diagnostics: diag,
	}
	s, err := sim.New(cfg.Gravity(), stepper, cfg.BodySet(), opts)
	if err != nil {
		return nil, err
	}
	for _, m := range r.DefaultMetrics(cfg.Half) {
		s.AddMetric(m)
	}
	return s, nil
}
