package physics

import (
	"math"
	"testing"

	"github.com/san-kum/threebody/internal/dynamo"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func referenceSet() dynamo.BodySet {
	return dynamo.BodySet{
		{Pos: dynamo.Vec{X: -0.5, Y: -0.5}, Vel: dynamo.Vec{X: 0.1, Y: 0.1}},
		{Pos: dynamo.Vec{X: 0.5, Y: -0.5}, Vel: dynamo.Vec{X: -0.1, Y: 0.1}},
		{Pos: dynamo.Vec{X: 0.0, Y: 0.5}, Vel: dynamo.Vec{X: 0.2, Y: 0.1}},
		{},
	}
}

func TestGravity_NewtonsThirdLaw(t *testing.T) {
	g := NewGravity()
	s := referenceSet()

	for i := range s {
		for j := range s {
			if i == j {
				continue
			}
			fij := g.Pull(s[i].Pos, s[j].Pos)
			fji := g.Pull(s[j].Pos, s[i].Pos)
			sum := r2.Add(fij, fji)
			if r2.Norm(sum) > 1e-12 {
				t.Errorf("pair (%d,%d): forces not opposite: %v vs %v", i, j, fij, fji)
			}
		}
	}
}

func TestGravity_MomentumRateIsZero(t *testing.T) {
	g := NewGravity()
	s := referenceSet()
	d := dynamo.NewBodySet(len(s))
	g.Derive(s, d)

	var total dynamo.Vec
	for _, b := range d {
		total = r2.Add(total, b.Vel)
	}
	if r2.Norm(total) > 1e-12 {
		t.Errorf("net acceleration should vanish, got %v", total)
	}
}

func TestGravity_NoSelfForce(t *testing.T) {
	g := NewGravity()
	s := dynamo.BodySet{{Pos: dynamo.Vec{X: 0.3, Y: -0.2}, Vel: dynamo.Vec{X: 1}}}
	d := dynamo.NewBodySet(1)
	g.Derive(s, d)

	if d[0].Vel != (dynamo.Vec{}) {
		t.Errorf("lone body accelerated: %v", d[0].Vel)
	}
	if d[0].Pos != s[0].Vel {
		t.Errorf("position rate = %v, want velocity %v", d[0].Pos, s[0].Vel)
	}
}

func TestGravity_DeriveDoesNotMutateInput(t *testing.T) {
	g := NewGravity()
	s := referenceSet()
	before := s.Clone()
	d := dynamo.NewBodySet(len(s))
	g.Derive(s, d)

	for i := range s {
		if s[i] != before[i] {
			t.Errorf("body %d mutated: %v -> %v", i, before[i], s[i])
		}
	}
}

func TestGravity_SymmetricCentreFeelsNothing(t *testing.T) {
	g := NewGravity()
	s := dynamo.NewBodySet(4)
	for k := 0; k < 3; k++ {
		angle := float64(k) * 2 * math.Pi / 3
		s[k].Pos = dynamo.Vec{X: 0.3 * math.Cos(angle), Y: 0.3 * math.Sin(angle)}
	}
	d := dynamo.NewBodySet(4)
	g.Derive(s, d)

	if r2.Norm(d[3].Vel) > 1e-12 {
		t.Errorf("centre body should feel no net pull, got %v", d[3].Vel)
	}
	if r2.Norm(d[0].Vel) == 0 {
		t.Error("vertex body should be pulled inward")
	}
}

func TestGravity_SofteningFloor(t *testing.T) {
	g := NewGravity()

	far := g.Pull(dynamo.Vec{}, dynamo.Vec{X: 2})
	if !scalar.EqualWithinAbs(far.X, 0.25, 1e-12) || far.Y != 0 {
		t.Errorf("pull at r=2: got %v, want (0.25, 0)", far)
	}

	floor := g.Pull(dynamo.Vec{}, dynamo.Vec{X: 0.5})
	near := g.Pull(dynamo.Vec{}, dynamo.Vec{X: 0.1})
	if !scalar.EqualWithinAbs(floor.X, 4, 1e-12) {
		t.Errorf("pull at the floor: got %v, want 4", floor.X)
	}
	if near.X > floor.X {
		t.Errorf("pull inside the floor exceeds the floor value: %v > %v", near.X, floor.X)
	}

	same := g.Pull(dynamo.Vec{X: 0.2}, dynamo.Vec{X: 0.2})
	if same != (dynamo.Vec{}) {
		t.Errorf("coincident bodies should not produce a direction, got %v", same)
	}
}

func TestGravity_Energy(t *testing.T) {
	g := NewGravity()
	s := dynamo.BodySet{
		{Pos: dynamo.Vec{X: -0.5}, Vel: dynamo.Vec{Y: 1}},
		{Pos: dynamo.Vec{X: 0.5}, Vel: dynamo.Vec{Y: -1}},
	}

	// kinetic 0.5+0.5, potential counted for both orderings: 1/1 + 1/1
	expected := 1.0 - 2.0
	if got := g.Energy(s); !scalar.EqualWithinAbs(got, expected, 1e-12) {
		t.Errorf("Energy() = %f, want %f", got, expected)
	}
}

func TestGravity_EnergyIgnoresSoftening(t *testing.T) {
	g := NewGravity()
	s := dynamo.BodySet{
		{Pos: dynamo.Vec{X: 0.1}},
		{Pos: dynamo.Vec{X: 0.1}},
	}

	if e := g.Energy(s); !math.IsInf(e, -1) {
		t.Errorf("coincident bodies should give -Inf energy, got %f", e)
	}
}

func TestGravity_Momentum(t *testing.T) {
	g := NewGravity()
	s := referenceSet()

	p := g.Momentum(s)
	if !scalar.EqualWithinAbs(p.X, 0.2, 1e-12) || !scalar.EqualWithinAbs(p.Y, 0.3, 1e-12) {
		t.Errorf("Momentum() = %v, want (0.2, 0.3)", p)
	}

	orbit := dynamo.BodySet{
		{Pos: dynamo.Vec{X: 1}, Vel: dynamo.Vec{Y: 1}},
	}
	if L := g.AngularMomentum(orbit); !scalar.EqualWithinAbs(L, 1, 1e-12) {
		t.Errorf("AngularMomentum() = %f, want 1", L)
	}
}
