package dynamo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D vector.
type Vec = r2.Vec

// Body is a point mass of unit mass.
type Body struct {
	Pos Vec
	Vel Vec
}

// BodySet is an ordered collection of bodies. Its length is fixed once built.
type BodySet []Body

func NewBodySet(n int) BodySet {
	return make(BodySet, n)
}

func (s BodySet) Clone() BodySet {
	c := make(BodySet, len(s))
	copy(c, s)
	return c
}

// CopyFrom overwrites s with src. Both sets must have the same length.
func (s BodySet) CopyFrom(src BodySet) {
	MustMatch(s, src)
	copy(s, src)
}

// Zero resets every position and velocity to the origin.
func (s BodySet) Zero() {
	for i := range s {
		s[i] = Body{}
	}
}

func (s BodySet) IsValid() bool {
	for _, b := range s {
		if !finite(b.Pos.X) || !finite(b.Pos.Y) || !finite(b.Vel.X) || !finite(b.Vel.Y) {
			return false
		}
	}
	return true
}

// Positions returns the body positions in order.
func (s BodySet) Positions() []Vec {
	out := make([]Vec, len(s))
	for i, b := range s {
		out[i] = b.Pos
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Dynamics computes the time derivative of a body set into d.
type Dynamics interface {
	Derive(s BodySet, d BodySet)
}

// Hamiltonian reports a diagnostic energy for a body set.
type Hamiltonian interface {
	Energy(s BodySet) float64
}

// Constraint is applied to the state once at the end of every step.
type Constraint interface {
	Apply(s BodySet)
}

// Stepper advances a body set in place by dt.
type Stepper interface {
	Step(dyn Dynamics, s BodySet, dt float64)
}

// Frame describes the state after one Advance call.
type Frame struct {
	Index  int
	Time   float64
	Dt     float64
	Energy float64
	// Bodies aliases the simulator state and is only valid during the
	// callback. Clone it to keep it.
	Bodies BodySet
}

type Observer interface {
	OnFrame(f Frame)
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}
