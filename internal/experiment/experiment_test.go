package experiment

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/dynamo"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	names := r.ListSteppers()
	if len(names) != 2 || names[0] != "euler" || names[1] != "rk4" {
		t.Errorf("unexpected steppers: %v", names)
	}

	if _, err := r.GetStepper("rk4", nil); err != nil {
		t.Errorf("rk4 lookup failed: %v", err)
	}
	if _, err := r.GetStepper("rk45", nil); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestBuild(t *testing.T) {
	var diag bytes.Buffer
	s, err := Build(NewRegistry(), config.Default(), "", &diag)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	result, err := s.Run(context.Background(), 10, 1.0/60)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["energy_drift"]; !ok {
		t.Error("energy_drift metric missing")
	}
	if result.Metrics["containment"] != 1.0 {
		t.Errorf("bodies left the box in the first frames: %v", result.Metrics["containment"])
	}
	if diag.Len() == 0 {
		t.Error("no diagnostics written")
	}
}

func TestBuild_Invalid(t *testing.T) {
	cfg := config.Default()
	cfg.Substeps = 0
	if _, err := Build(NewRegistry(), cfg, "", nil); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}

	if _, err := Build(NewRegistry(), config.Default(), "leapfrog", nil); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
