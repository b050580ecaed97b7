package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
)

// Simulator owns one body set and advances it frame by frame. It is not
// safe for concurrent use.
type Simulator struct {
	dyn       dynamo.Dynamics
	stepper   dynamo.Stepper
	bodies    dynamo.BodySet
	opts      Options
	t         float64
	frame     int
	failed    error
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(dyn dynamo.Dynamics, stepper dynamo.Stepper, bodies dynamo.BodySet, opts Options) (*Simulator, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if len(bodies) == 0 {
		return nil, fmt.Errorf("%w: empty body set", dynamo.ErrParameterBounds)
	}
	if !bodies.IsValid() {
		return nil, dynamo.ErrInvalidState
	}
	return &Simulator{
		dyn:       dyn,
		stepper:   stepper,
		bodies:    bodies.Clone(),
		opts:      opts,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}, nil
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func validateOptions(opts Options) error {
	if opts.Substeps < 1 {
		return fmt.Errorf("%w: substeps must be >= 1, got %d", dynamo.ErrParameterBounds, opts.Substeps)
	}
	if opts.Friction < 0 {
		return fmt.Errorf("%w: friction must be non-negative, got %f", dynamo.ErrParameterBounds, opts.Friction)
	}
	return nil
}

// Advance integrates dt seconds of simulated time as Substeps equal
// sub-steps, then reports energy. A rejected dt leaves the state as is.
// Once the state has gone non-finite every call returns the same error
// until Reset.
func (s *Simulator) Advance(dt float64) error {
	if s.failed != nil {
		return s.failed
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: got %v", dynamo.ErrInvalidTimestep, dt)
	}

	n := s.opts.Substeps
	h := dt / float64(n)
	for i := 0; i < n; i++ {
		s.stepper.Step(s.dyn, s.bodies, h)
		physics.Damp(s.bodies, s.opts.Friction, h)
	}
	s.t += dt

	if !s.bodies.IsValid() {
		s.failed = &dynamo.SimulationError{Frame: s.frame, Time: s.t, Wrapped: dynamo.ErrInvalidState}
		return s.failed
	}

	energy := s.Energy()
	if s.opts.Diagnostics != nil {
		fmt.Fprintf(s.opts.Diagnostics, "energy: %f\n", energy)
	}

	f := dynamo.Frame{Index: s.frame, Time: s.t, Dt: dt, Energy: energy, Bodies: s.bodies}
	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, obs := range s.observers {
		obs.OnFrame(f)
	}
	s.frame++

	return nil
}

// Energy is the diagnostic energy of the current state, or 0 when the
// dynamics do not define one.
func (s *Simulator) Energy() float64 {
	if h, ok := s.dyn.(dynamo.Hamiltonian); ok {
		return h.Energy(s.bodies)
	}
	return 0
}

// Bodies returns a copy of the current state for drawing.
func (s *Simulator) Bodies() dynamo.BodySet {
	return s.bodies.Clone()
}

// Gravity returns the gravity model driving the simulator, or nil when the
// dynamics are something else.
func (s *Simulator) Gravity() *physics.Gravity {
	g, _ := s.dyn.(*physics.Gravity)
	return g
}

func (s *Simulator) Time() float64 { return s.t }
func (s *Simulator) Frames() int   { return s.frame }

// Reset replaces the state with bodies, which must have the same length.
func (s *Simulator) Reset(bodies dynamo.BodySet) error {
	if len(bodies) != len(s.bodies) {
		return fmt.Errorf("%w: have %d bodies, got %d", dynamo.ErrDimensionMismatch, len(s.bodies), len(bodies))
	}
	if !bodies.IsValid() {
		return dynamo.ErrInvalidState
	}
	s.bodies.CopyFrom(bodies)
	s.t = 0
	s.frame = 0
	s.failed = nil
	for _, m := range s.metrics {
		m.Reset()
	}
	return nil
}

// Run advances frames times by frameDt, checking ctx between frames.
func (s *Simulator) Run(ctx context.Context, frames int, frameDt float64) (*Result, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: frames must be non-negative, got %d", dynamo.ErrParameterBounds, frames)
	}

	result := &Result{
		Times:    make([]float64, 0, frames+1),
		Energies: make([]float64, 0, frames+1),
		Metrics:  make(map[string]float64),
	}

	initialEnergy := s.Energy()
	result.Times = append(result.Times, s.t)
	result.Energies = append(result.Energies, initialEnergy)

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.Advance(frameDt); err != nil {
			return result, err
		}
		result.Frames++
		result.Times = append(result.Times, s.t)
		result.Energies = append(result.Energies, s.Energy())
	}

	finalEnergy := result.Energies[len(result.Energies)-1]
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
