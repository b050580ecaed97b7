package integrators

import (
	"testing"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
)

func benchSet() dynamo.BodySet {
	return dynamo.BodySet{
		{Pos: dynamo.Vec{X: -0.5, Y: -0.5}, Vel: dynamo.Vec{X: 0.1, Y: 0.1}},
		{Pos: dynamo.Vec{X: 0.5, Y: -0.5}, Vel: dynamo.Vec{X: -0.1, Y: 0.1}},
		{Pos: dynamo.Vec{X: 0.0, Y: 0.5}, Vel: dynamo.Vec{X: 0.2, Y: 0.1}},
		{},
	}
}

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler(physics.NewBox())
	dyn := physics.NewGravity()
	s := benchSet()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integrator.Step(dyn, s, 0.0001)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4(physics.NewBox())
	dyn := physics.NewGravity()
	s := benchSet()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integrator.Step(dyn, s, 0.0001)
	}
}

func BenchmarkRK4_Frame(b *testing.B) {
	integrator := NewRK4(physics.NewBox())
	dyn := physics.NewGravity()
	s := benchSet()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 100; j++ {
			integrator.Step(dyn, s, 1.0/60/100)
		}
	}
}
