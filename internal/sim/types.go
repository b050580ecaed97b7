package sim

import (
	"io"
	"os"
)

const DefaultSubsteps = 100

type Options struct {
	Substeps int
	Friction float64
	// Diagnostics receives one "energy: <value>" line per Advance. Nil
	// disables the line.
	Diagnostics io.Writer
}

func DefaultOptions() Options {
	return Options{
		Substeps:    DefaultSubsteps,
		Diagnostics: os.Stderr,
	}
}

// Result summarises a headless Run.
type Result struct {
	Times       []float64
	Energies    []float64
	Frames      int
	EnergyDrift float64
	Metrics     map[string]float64
}
