// Package sim drives the star simulation frame by frame.
//
// [Simulator.Advance] is the single entry point a frame loop calls with
// the measured wall time since the previous frame. The time is split into
// a fixed number of equal sub-steps so that a slow frame cannot destabilise
// the near-singular force law.
package sim
