// Package dynamo provides the core state types for the star simulation.
//
// The package defines the data the rest of the program passes around:
//
//   - [Vec]: 2D vector used for positions and velocities
//   - [Body]: a single unit point mass
//   - [BodySet]: the fixed-length ordered collection of bodies
//   - [Stepper]: numerical integrator interface
//   - [Observer] and [Metric]: per-frame hooks used by the simulator
//
// # Example
//
//	set := config.Default().BodySet()
//	s, _ := sim.New(set, sim.DefaultOptions())
//	_ = s.Advance(1.0 / 60)
//
// # Thread Safety
//
// A BodySet is a plain slice. Nothing in this package synchronizes access;
// the simulator that owns a set is expected to be driven from one goroutine.
package dynamo
