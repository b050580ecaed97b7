// Package physics provides the force law and wall handling for the star
// simulation.
//
//   - [Gravity]: pairwise attraction with a softening floor; implements
//     [dynamo.Dynamics] and [dynamo.Hamiltonian]
//   - [Box]: reflecting square boundary; implements [dynamo.Constraint]
//   - [Damp]: optional exponential velocity damping
//
// # Energy
//
// The force law clamps separations to the softening radius but
// [Gravity.Energy] does not, so reported energy is only an approximate
// conservation check:
//
//	g := physics.NewGravity()
//	e := g.Energy(set)
package physics
