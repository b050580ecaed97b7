package sim_test

import (
	"bytes"
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/integrators"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
)

var _ = Describe("Simulator", func() {
	var (
		cfg  *config.Config
		diag *bytes.Buffer
		s    *sim.Simulator
	)

	BeforeEach(func() {
		cfg = config.Default()
		diag = &bytes.Buffer{}
		opts := sim.Options{Substeps: cfg.Substeps, Diagnostics: diag}

		var err error
		s, err = sim.New(cfg.Gravity(), integrators.NewRK4(cfg.Box()), cfg.BodySet(), opts)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Advance", func() {
		It("keeps the fourth body in the interaction", func() {
			Expect(s.Bodies()).To(HaveLen(4))
			Expect(s.Advance(0.05)).To(Succeed())
			Expect(s.Bodies()[3].Vel).NotTo(Equal(dynamo.Vec{}))
		})

		It("writes one energy line per frame", func() {
			for i := 0; i < 3; i++ {
				Expect(s.Advance(1.0 / 60)).To(Succeed())
			}
			Expect(diag.String()).To(MatchRegexp(`^(energy: -?\d+\.\d{6}\n){3}$`))
		})

		It("rejects a negative frame time", func() {
			Expect(s.Advance(-1)).To(MatchError(dynamo.ErrInvalidTimestep))
			Expect(s.Frames()).To(BeZero())
		})

		It("leaves energy unchanged for an empty frame", func() {
			before := s.Energy()
			Expect(s.Advance(0)).To(Succeed())
			Expect(s.Energy()).To(BeNumerically("~", before, 1e-12))
		})
	})

	Describe("a long headless run", func() {
		It("stays finite and near the box", func() {
			result, err := s.Run(context.Background(), 600, 1.0/60)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Frames).To(Equal(600))

			box := physics.Box{Half: 1.5}
			for _, b := range s.Bodies() {
				Expect(math.IsNaN(b.Pos.X) || math.IsNaN(b.Pos.Y)).To(BeFalse())
				Expect(box.Contains(b.Pos)).To(BeTrue(), "body escaped to %v", b.Pos)
			}
		})
	})
})
