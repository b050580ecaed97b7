package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// reference trajectory and a neighbour displaced by perturbation along the
// first body's x position. After every step the separation is measured and
// the neighbour is pulled back to distance perturbation along the same
// direction. A positive value indicates chaos.
//
// λ ≈ (1/T) Σ ln(|δ(t)| / δ0)
func LyapunovExponent(
	dyn dynamo.Dynamics,
	stepper dynamo.Stepper,
	x0 dynamo.BodySet,
	dt, duration float64,
	perturbation float64,
) (float64, error) {
	if len(x0) == 0 {
		return 0, nil
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0, fmt.Errorf("%w: dt must be positive, got %v", dynamo.ErrInvalidTimestep, dt)
	}
	if perturbation <= 0 {
		return 0, fmt.Errorf("%w: perturbation must be positive, got %v", dynamo.ErrParameterBounds, perturbation)
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0].Pos.X += perturbation

	t := 0.0
	sumLog := 0.0
	for t < duration {
		stepper.Step(dyn, x, dt)
		stepper.Step(dyn, xp, dt)
		t += dt

		if !x.IsValid() || !xp.IsValid() {
			return 0, &dynamo.SimulationError{Time: t, Wrapped: dynamo.ErrInvalidState}
		}

		sep := Separation(x, xp)
		if sep == 0 {
			continue
		}
		sumLog += math.Log(sep / perturbation)

		scale := perturbation / sep
		for i := range xp {
			xp[i].Pos = r2.Add(x[i].Pos, r2.Scale(scale, r2.Sub(xp[i].Pos, x[i].Pos)))
			xp[i].Vel = r2.Add(x[i].Vel, r2.Scale(scale, r2.Sub(xp[i].Vel, x[i].Vel)))
		}
	}

	if t == 0 {
		return 0, nil
	}
	return sumLog / t, nil
}

// Separation is the phase-space distance between two sets of equal length.
func Separation(a, b dynamo.BodySet) float64 {
	dynamo.MustMatch(a, b)
	sum := 0.0
	for i := range a {
		sum += r2.Norm2(r2.Sub(a[i].Pos, b[i].Pos))
		sum += r2.Norm2(r2.Sub(a[i].Vel, b[i].Vel))
	}
	return math.Sqrt(sum)
}
