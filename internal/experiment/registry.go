package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/integrators"
	"github.com/san-kum/threebody/internal/metrics"
)

type Registry struct {
	steppers map[string]func(dynamo.Constraint) dynamo.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers: make(map[string]func(dynamo.Constraint) dynamo.Stepper),
	}

	r.steppers["rk4"] = func(c dynamo.Constraint) dynamo.Stepper { return integrators.NewRK4(c) }
	r.steppers["euler"] = func(c dynamo.Constraint) dynamo.Stepper { return integrators.NewEuler(c) }

	return r
}

func (r *Registry) GetStepper(name string, c dynamo.Constraint) (dynamo.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(c), nil
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(half float64) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewEnergyDrift(),
		metrics.NewContainment(half),
	}
}
