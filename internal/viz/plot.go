package viz

import "github.com/guptarohit/asciigraph"

// EnergyPlot renders an energy series as an ascii chart. Fewer than two
// samples produce an empty string.
func EnergyPlot(energies []float64, width, height int) string {
	if len(energies) < 2 {
		return ""
	}
	return asciigraph.Plot(energies,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("energy"),
	)
}
