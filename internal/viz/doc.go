// Package viz draws a running simulation in the terminal.
//
// Stars are plotted on a braille [Canvas] that maps the bounding square
// onto 2x4 dots per character cell. Each frame the previous picture fades
// by exp(-fade*dt) through a [Trail], so moving stars leave short tails.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	?     - Show help
//	Q     - Quit
package viz
