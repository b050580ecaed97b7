package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/threebody/internal/dynamo"
)

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift()

	for _, e := range []float64{-2.0, -2.1, -1.9, -2.05} {
		m.Observe(dynamo.Frame{Energy: e})
	}

	if math.Abs(m.Value()-0.05) > 1e-12 {
		t.Errorf("expected max drift 0.05, got %f", m.Value())
	}
}

func TestEnergyDriftReset(t *testing.T) {
	m := NewEnergyDrift()
	m.Observe(dynamo.Frame{Energy: 1})
	m.Observe(dynamo.Frame{Energy: 2})
	if m.Value() == 0 {
		t.Error("expected non-zero drift")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}

	m.Observe(dynamo.Frame{Energy: 5})
	if m.Value() != 0 {
		t.Errorf("first frame after reset should set the baseline, got drift %f", m.Value())
	}
}

func TestContainment(t *testing.T) {
	m := NewContainment(1.0)
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 with no samples, got %f", m.Value())
	}

	inside := dynamo.BodySet{{Pos: dynamo.Vec{X: 0.5}}, {Pos: dynamo.Vec{Y: -1}}}
	outside := dynamo.BodySet{{Pos: dynamo.Vec{X: 1.05}}, {Pos: dynamo.Vec{Y: -1.5}}}

	m.Observe(dynamo.Frame{Bodies: inside})
	m.Observe(dynamo.Frame{Bodies: inside})
	m.Observe(dynamo.Frame{Bodies: inside})
	m.Observe(dynamo.Frame{Bodies: outside})

	if m.Value() != 0.75 {
		t.Errorf("expected 0.75, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 after reset, got %f", m.Value())
	}
}
