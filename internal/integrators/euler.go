package integrators

import (
	"github.com/san-kum/threebody/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

// Euler is semi-implicit (symplectic) Euler: velocities are kicked first
// and positions drift with the updated velocities.
type Euler struct {
	constraint dynamo.Constraint
	d          dynamo.BodySet
}

func NewEuler(c dynamo.Constraint) *Euler {
	return &Euler{constraint: c}
}

func (e *Euler) Step(dyn dynamo.Dynamics, s dynamo.BodySet, dt float64) {
	if len(e.d) != len(s) {
		e.d = dynamo.NewBodySet(len(s))
	}

	dyn.Derive(s, e.d)
	for i := range s {
		s[i].Vel = r2.Add(s[i].Vel, r2.Scale(dt, e.d[i].Vel))
		s[i].Pos = r2.Add(s[i].Pos, r2.Scale(dt, s[i].Vel))
	}

	if e.constraint != nil {
		e.constraint.Apply(s)
	}
}
