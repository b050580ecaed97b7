package physics

import (
	"math"

	"github.com/san-kum/threebody/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultHalf   = 1.0
	DefaultBounce = 1.0
)

// Box reflects bodies off the walls of the square [-Half, Half]².
// Positions are never clamped; only the outward velocity component is
// turned around, scaled by Bounce.
type Box struct {
	Half   float64
	Bounce float64
}

func NewBox() *Box {
	return &Box{Half: DefaultHalf, Bounce: DefaultBounce}
}

// Apply implements dynamo.Constraint.
func (b *Box) Apply(s dynamo.BodySet) {
	b.Reflect(s)
}

// Reflect handles x and y independently.
func (b *Box) Reflect(s dynamo.BodySet) {
	for i := range s {
		if b.outward(s[i].Pos.Y, s[i].Vel.Y) {
			s[i].Vel.Y = -b.Bounce * s[i].Vel.Y
		}
		if b.outward(s[i].Pos.X, s[i].Vel.X) {
			s[i].Vel.X = -b.Bounce * s[i].Vel.X
		}
	}
}

func (b *Box) outward(p, v float64) bool {
	return p < -b.Half && v < 0 || p > b.Half && v > 0
}

// Contains reports whether p lies inside the closed square.
func (b *Box) Contains(p dynamo.Vec) bool {
	return math.Abs(p.X) <= b.Half && math.Abs(p.Y) <= b.Half
}

// Damp scales every velocity by exp(-friction*dt).
func Damp(s dynamo.BodySet, friction, dt float64) {
	if friction == 0 {
		return
	}
	k := math.Exp(-friction * dt)
	for i := range s {
		s[i].Vel = r2.Scale(k, s[i].Vel)
	}
}
