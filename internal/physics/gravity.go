package physics

import (
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultG         = 1.0
	DefaultSoftening = 0.5
)

// Gravity is pairwise attraction between unit masses with a minimum
// separation floor.
type Gravity struct {
	G         float64
	Softening float64 // separations below this are treated as equal to it
}

func NewGravity() *Gravity {
	return &Gravity{
		G:         DefaultG,
		Softening: DefaultSoftening,
	}
}

// Derive writes ds/dt into d. s is not modified.
func (g *Gravity) Derive(s dynamo.BodySet, d dynamo.BodySet) {
	dynamo.MustMatch(s, d)

	for i := range s {
		d[i].Vel = g.Acceleration(s, i)
	}
	for i := range s {
		d[i].Pos = s[i].Vel
	}
}

// Acceleration returns the summed pull of every other body on body i.
func (g *Gravity) Acceleration(s dynamo.BodySet, i int) dynamo.Vec {
	var acc dynamo.Vec
	for j := range s {
		if i == j {
			continue
		}
		acc = r2.Add(acc, g.Pull(s[i].Pos, s[j].Pos))
	}
	return acc
}

// Pull is the acceleration a body at p1 feels from a body at p2.
func (g *Gravity) Pull(p1, p2 dynamo.Vec) dynamo.Vec {
	r12 := r2.Sub(p2, p1)
	rlen := math.Max(g.Softening, r2.Norm(r12))
	if rlen == 0 {
		return dynamo.Vec{}
	}
	rnorm := r2.Scale(1/rlen, r12)
	force := g.G / (rlen * rlen)
	return r2.Scale(force, rnorm)
}

// Energy is kinetic minus potential energy. The potential sums every
// ordered pair and ignores the softening floor, so it is only a drift
// indicator: it tends to -Inf as two bodies meet.
func (g *Gravity) Energy(s dynamo.BodySet) float64 {
	pe := 0.0
	ke := 0.0

	for i := range s {
		for j := range s {
			if i == j {
				continue
			}
			pe += g.G / r2.Norm(r2.Sub(s[j].Pos, s[i].Pos))
		}
		v := r2.Norm(s[i].Vel)
		ke += 0.5 * v * v
	}

	return ke - pe
}

func (g *Gravity) Momentum(s dynamo.BodySet) dynamo.Vec {
	var p dynamo.Vec
	for _, b := range s {
		p = r2.Add(p, b.Vel)
	}
	return p
}

func (g *Gravity) AngularMomentum(s dynamo.BodySet) float64 {
	L := 0.0
	for _, b := range s {
		L += r2.Cross(b.Pos, b.Vel)
	}
	return L
}
