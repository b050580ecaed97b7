package integrators

import (
	"github.com/san-kum/threebody/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

// Combine sets out = base + deriv*scale for every position and velocity.
// out may alias base.
func Combine(out, base, deriv dynamo.BodySet, scale float64) {
	dynamo.MustMatch(out, base, deriv)
	for i := range base {
		out[i].Pos = r2.Add(base[i].Pos, r2.Scale(scale, deriv[i].Pos))
		out[i].Vel = r2.Add(base[i].Vel, r2.Scale(scale, deriv[i].Vel))
	}
}

// Accumulate adds deriv*scale into acc.
func Accumulate(acc, deriv dynamo.BodySet, scale float64) {
	Combine(acc, acc, deriv, scale)
}
