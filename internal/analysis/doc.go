// Package analysis characterizes trajectories beyond the per-frame energy
// line.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [Separation]: phase-space distance between two body sets
//
// A positive exponent means nearby starting states diverge exponentially,
// which is the usual case for three or more interacting stars.
package analysis
