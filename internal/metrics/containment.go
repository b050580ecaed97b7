package metrics

import (
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
)

// Containment is the fraction of frames on which every body was inside
// the square [-half, half]².
type Containment struct {
	name       string
	box        *physics.Box
	violations int
	samples    int
}

func NewContainment(half float64) *Containment {
	return &Containment{
		name: "containment",
		box:  &physics.Box{Half: half},
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(f dynamo.Frame) {
	c.samples++
	for _, b := range f.Bodies {
		if !c.box.Contains(b.Pos) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
