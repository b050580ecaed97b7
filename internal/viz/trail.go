package viz

import "math"

// Trail keeps a fading intensity per sub-pixel. Every frame the whole
// field decays by exp(-fade*dt), the same as painting a translucent
// background of alpha 1-exp(-fade*dt) over the previous frame.
type Trail struct {
	w, h  int
	fade  float64
	cells []float64
}

const trailThreshold = 0.05

func NewTrail(w, h int, fade float64) *Trail {
	return &Trail{w: w, h: h, fade: fade, cells: make([]float64, w*h)}
}

func (t *Trail) Decay(dt float64) {
	k := math.Exp(-t.fade * dt)
	for i := range t.cells {
		t.cells[i] *= k
	}
}

func (t *Trail) Stamp(x, y int) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.cells[y*t.w+x] = 1
}

func (t *Trail) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return 0
	}
	return t.cells[y*t.w+x]
}

func (t *Trail) Clear() {
	for i := range t.cells {
		t.cells[i] = 0
	}
}

// Paint lights every sub-pixel still above the visibility threshold.
func (t *Trail) Paint(c *Canvas) {
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			if t.cells[y*t.w+x] > trailThreshold {
				c.Set(x, y)
			}
		}
	}
}
