package wildfire

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"wildfire-ca/internal/core"
)

// EnsembleRun records the final analytics of one member run.
type EnsembleRun struct {
	Seed  int64
	RunID string
	Final StepMetrics
}

// EnsembleResult aggregates many independently seeded runs of one configuration.
type EnsembleResult struct {
	Runs []EnsembleRun
	// BurnProbability is the fraction of runs in which each cell ended
	// Burning or Ash.
	BurnProbability  core.Grid[float64]
	MeanAffectedArea float64
}

// Seeds returns n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = base + int64(i)
	}
	return out
}

// RunEnsemble simulates cfg once per seed using at most workers goroutines.
// Results are ordered like seeds and do not depend on the worker count. The
// first failing run cancels the rest. Options are applied to every member, so
// a WindSource given through WithWind must be safe for concurrent use.
func RunEnsemble(ctx context.Context, cfg Config, seeds []int64, workers int, opts ...Option) (EnsembleResult, error) {
	if err := cfg.Validate(); err != nil {
		return EnsembleResult{}, err
	}
	if workers <= 0 {
		workers = 1
	}

	runs := make([]EnsembleRun, len(seeds))
	finals := make([]core.Grid[State], len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			member := cfg
			member.Seed = seed
			sim, err := New(member, opts...)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			if err := sim.Run(gctx); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			final, err := sim.Metrics(sim.CurrentStep())
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			runs[i] = EnsembleRun{Seed: seed, RunID: sim.RunID(), Final: final}
			finals[i] = sim.History()[sim.CurrentStep()].Grid
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return EnsembleResult{}, err
	}

	res := EnsembleResult{
		Runs:            runs,
		BurnProbability: core.NewGrid[float64](cfg.Size, cfg.Size),
	}
	if len(seeds) == 0 {
		return res, nil
	}
	prob := res.BurnProbability.Cells()
	for i, grid := range finals {
		for idx, st := range grid.Cells() {
			if st == Burning || st == Ash {
				prob[idx]++
			}
		}
		res.MeanAffectedArea += runs[i].Final.AffectedArea
	}
	n := float64(len(seeds))
	for idx := range prob {
		prob[idx] /= n
	}
	res.MeanAffectedArea /= n
	return res, nil
}
