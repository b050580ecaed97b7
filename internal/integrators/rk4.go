package integrators

import "github.com/san-kum/threebody/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta stepper. The constraint, if
// any, runs once after the weighted combination and never inside the
// stage evaluations.
type RK4 struct {
	constraint     dynamo.Constraint
	k1, k2, k3, k4 dynamo.BodySet
	k              dynamo.BodySet
	scratch        dynamo.BodySet
}

func NewRK4(c dynamo.Constraint) *RK4 {
	return &RK4{constraint: c}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = dynamo.NewBodySet(n)
		r.k2 = dynamo.NewBodySet(n)
		r.k3 = dynamo.NewBodySet(n)
		r.k4 = dynamo.NewBodySet(n)
		r.k = dynamo.NewBodySet(n)
		r.scratch = dynamo.NewBodySet(n)
	}
}

// Step advances s in place by dt.
func (r *RK4) Step(dyn dynamo.Dynamics, s dynamo.BodySet, dt float64) {
	r.ensureScratch(len(s))

	dyn.Derive(s, r.k1)
	Combine(r.scratch, s, r.k1, dt/2)
	dyn.Derive(r.scratch, r.k2)
	Combine(r.scratch, s, r.k2, dt/2)
	dyn.Derive(r.scratch, r.k3)
	Combine(r.scratch, s, r.k3, dt)
	dyn.Derive(r.scratch, r.k4)

	// 1/6, 1/3, 1/3, 1/6 is k1 + 2k2 + 2k3 + k4 over 6
	r.k.Zero()
	Accumulate(r.k, r.k1, 1.0/6.0)
	Accumulate(r.k, r.k2, 1.0/3.0)
	Accumulate(r.k, r.k3, 1.0/3.0)
	Accumulate(r.k, r.k4, 1.0/6.0)
	Accumulate(s, r.k, dt)

	if r.constraint != nil {
		r.constraint.Apply(s)
	}
}
