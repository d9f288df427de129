package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/vdptrail/internal/integrators"
	"github.com/san-kum/vdptrail/internal/physics"
)

// SweepResult pairs a coupling constant with the trajectory it produced.
type SweepResult struct {
	Mu         float64
	Trajectory *Trajectory
}

// Sweep runs one independent Van der Pol integrator per entry of mus in
// parallel. Every mu is checked before any run starts. Results keep the
// order of mus. ctx is only checked before each run starts; a run in
// progress is never interrupted.
func Sweep(ctx context.Context, mus []float64, init Initial, steps int, h float64) ([]SweepResult, error) {
	if err := validate(steps, h); err != nil {
		return nil, err
	}

	runs := make([]*Integrator, len(mus))
	for i, mu := range mus {
		sys := physics.NewCoupledVanDerPol(physics.DefaultMu)
		if err := sys.SetParam("mu", mu); err != nil {
			return nil, fmt.Errorf("sweep entry %d: %w", i, err)
		}
		runs[i] = New(sys, integrators.RK4Factory, init)
	}

	results := make([]SweepResult, len(mus))
	g, ctx := errgroup.WithContext(ctx)

	for i, run := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := run.Advance(steps, h)
			if err != nil {
				return err
			}
			results[i] = SweepResult{Mu: run.Params()["mu"], Trajectory: tr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
