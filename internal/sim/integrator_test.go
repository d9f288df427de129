package sim_test

import (
	"context"
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vdptrail/internal/dynamo"
	"github.com/san-kum/vdptrail/internal/integrators"
	"github.com/san-kum/vdptrail/internal/sim"
)

var reference = sim.Initial{T: 0, Px: 0, Py: 0, Vx: 0.5, Vy: 0.5}

type planar struct{}

func (planar) Derive(x dynamo.State, t float64) dynamo.State { return dynamo.State{x[1], -x[0]} }
func (planar) StateDim() int                                 { return 2 }

var _ = Describe("Integrator", func() {
	Describe("Advance", func() {
		DescribeTable("returns index-aligned sequences of the requested length",
			func(steps int, h float64) {
				tr, err := sim.NewVanDerPol(0.85, reference).Advance(steps, h)
				Expect(err).NotTo(HaveOccurred())
				Expect(tr.Times).To(HaveLen(steps))
				Expect(tr.Xs).To(HaveLen(steps))
				Expect(tr.Ys).To(HaveLen(steps))
				Expect(tr.Len()).To(Equal(steps))
			},
			Entry("single step", 1, 0.1),
			Entry("short run", 37, 0.05),
			Entry("fine grid", 500, 0.001),
		)

		It("places sample i at t0+(i+1)h", func() {
			init := reference
			init.T = 3.25
			h := 0.1
			tr, err := sim.NewVanDerPol(0.85, init).Advance(2000, h)
			Expect(err).NotTo(HaveOccurred())

			for i, t := range tr.Times {
				want := init.T + float64(i+1)*h
				Expect(t).To(BeNumerically("~", want, 1e-12))
				if i > 0 {
					Expect(t).To(BeNumerically(">", tr.Times[i-1]))
				}
			}
		})

		It("excludes the initial state from the output", func() {
			init := sim.Initial{Px: 1, Py: 1}
			tr, err := sim.NewVanDerPol(0.5, init).Advance(1, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Times[0]).To(BeNumerically("~", 0.1, 1e-15))
			Expect(tr.Xs[0]).NotTo(Equal(1.0))
		})

		It("returns empty sequences for zero steps", func() {
			tr, err := sim.NewVanDerPol(0.85, reference).Advance(0, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr).NotTo(BeNil())
			Expect(tr.Times).To(BeEmpty())
			Expect(tr.Xs).To(BeEmpty())
			Expect(tr.Ys).To(BeEmpty())
		})

		DescribeTable("rejects invalid arguments without producing a trajectory",
			func(steps int, h float64) {
				tr, err := sim.NewVanDerPol(0.85, reference).Advance(steps, h)
				Expect(err).To(MatchError(dynamo.ErrInvalidArgument))
				Expect(tr).To(BeNil())
			},
			Entry("negative steps", -1, 0.1),
			Entry("zero step size", 10, 0.0),
			Entry("negative step size", 10, -0.1),
			Entry("NaN step size", 10, math.NaN()),
			Entry("infinite step size", 10, math.Inf(1)),
		)

		It("rejects systems that are not four-dimensional", func() {
			_, err := sim.New(planar{}, integrators.RK4Factory, reference).Advance(10, 0.1)
			Expect(err).To(MatchError(dynamo.ErrDimensionMismatch))
		})

		It("is deterministic across fresh integrators", func() {
			a, err := sim.NewVanDerPol(0.85, reference).Advance(3000, 0.1)
			Expect(err).NotTo(HaveOccurred())
			b, err := sim.NewVanDerPol(0.85, reference).Advance(3000, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(Equal(a))
		})

		It("restarts from the initial state on every call", func() {
			integ := sim.NewVanDerPol(0.85, reference)
			a, _ := integ.Advance(500, 0.1)
			b, _ := integ.Advance(500, 0.1)
			Expect(b).To(Equal(a))
		})

		It("gives identical results when one integrator is shared across goroutines", func() {
			shared := sim.NewVanDerPol(0.85, reference)
			want, err := sim.NewVanDerPol(0.85, reference).Advance(5000, 0.1)
			Expect(err).NotTo(HaveOccurred())

			const workers = 8
			got := make([]*sim.Trajectory, workers)
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					tr, err := shared.Advance(5000, 0.1)
					Expect(err).NotTo(HaveOccurred())
					got[w] = tr
				}()
			}
			wg.Wait()

			for w := range got {
				Expect(got[w]).To(Equal(want), "worker %d", w)
			}
		})

		It("reports the parameters of configurable systems", func() {
			Expect(sim.NewVanDerPol(0.4, reference).Params()).To(Equal(map[string]float64{"mu": 0.4}))
			Expect(sim.New(planar{}, integrators.RK4Factory, reference).Params()).To(BeNil())
		})

		It("propagates non-finite values instead of failing", func() {
			init := sim.Initial{Px: math.NaN(), Vx: 0.5, Vy: 0.5}
			tr, err := sim.NewVanDerPol(0.85, init).Advance(5, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Xs).To(HaveLen(5))
			Expect(math.IsNaN(tr.Xs[4])).To(BeTrue())
			Expect(tr.FirstNonFinite()).To(Equal(0))
			Expect(tr.Degeneracy()).To(MatchError(dynamo.ErrNumericDegeneracy))
		})
	})

	Context("with mu = 0", func() {
		const h = 0.01

		var tr *sim.Trajectory

		BeforeEach(func() {
			var err error
			tr, err = sim.NewVanDerPol(0, sim.Initial{Px: 1, Py: 0, Vx: 0, Vy: 1}).Advance(1000, h)
			Expect(err).NotTo(HaveOccurred())
		})

		It("reduces to harmonic motion", func() {
			for i, t := range tr.Times {
				Expect(tr.Xs[i]).To(BeNumerically("~", math.Cos(t), 1e-8))
				Expect(tr.Ys[i]).To(BeNumerically("~", math.Sin(t), 1e-8))
			}
		})

		It("satisfies dVx/dt = -Px by finite differences", func() {
			for i := 1; i < len(tr.Xs)-1; i++ {
				accel := (tr.Xs[i+1] - 2*tr.Xs[i] + tr.Xs[i-1]) / (h * h)
				Expect(accel).To(BeNumerically("~", -tr.Xs[i], 1e-4))
			}
		})
	})

	Context("reference configuration", func() {
		It("runs 10000 steps of 0.1 to t=1000", func() {
			tr, err := sim.NewVanDerPol(0.85, reference).Advance(10000, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Len()).To(Equal(10000))
			Expect(tr.Times[0]).To(BeNumerically("~", 0.1, 1e-6))
			Expect(tr.Times[9999]).To(BeNumerically("~", 1000.0, 1e-6))
			Expect(tr.FirstNonFinite()).To(Equal(-1))
		})

		It("tracks x exactly in y when both start alike", func() {
			tr, err := sim.NewVanDerPol(0.85, reference).Advance(10000, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Ys).To(Equal(tr.Xs))
		})

		DescribeTable("stays on a bounded orbit",
			func(mu float64) {
				tr, err := sim.NewVanDerPol(mu, reference).Advance(10000, 0.1)
				Expect(err).NotTo(HaveOccurred())
				for i := range tr.Xs {
					Expect(math.Abs(tr.Xs[i])).To(BeNumerically("<", 10))
					Expect(math.Abs(tr.Ys[i])).To(BeNumerically("<", 10))
				}
			},
			Entry("mu=0.1", 0.1),
			Entry("mu=0.5", 0.5),
			Entry("mu=0.85", 0.85),
			Entry("mu=1", 1.0),
		)
	})
})

var _ = Describe("Sweep", func() {
	It("matches independent runs in input order", func() {
		mus := []float64{0.2, 0.85, 1.0, 0.5}
		results, err := sim.Sweep(context.Background(), mus, reference, 400, 0.1)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(mus)))

		for i, mu := range mus {
			want, err := sim.NewVanDerPol(mu, reference).Advance(400, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(results[i].Mu).To(Equal(mu))
			Expect(results[i].Trajectory).To(Equal(want))
		}
	})

	It("validates arguments before starting any run", func() {
		_, err := sim.Sweep(context.Background(), []float64{0.85}, reference, -5, 0.1)
		Expect(err).To(MatchError(dynamo.ErrInvalidArgument))
	})

	DescribeTable("rejects non-finite coupling constants",
		func(mu float64) {
			_, err := sim.Sweep(context.Background(), []float64{0.85, mu}, reference, 10, 0.1)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		},
		Entry("NaN", math.NaN()),
		Entry("+Inf", math.Inf(1)),
	)

	It("does not start runs once the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := sim.Sweep(ctx, []float64{0.1, 0.2}, reference, 10, 0.1)
		Expect(err).To(MatchError(context.Canceled))
	})
})
