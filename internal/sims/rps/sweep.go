package rps

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Outcome summarizes one headless run.
type Outcome struct {
	Seed int64

	// Decided is true once the population became a single kind.
	Decided bool
	Winner  Kind

	HomogeneousAt uint64
	DrainedAt     uint64
	Frames        uint64
	Conversions   int
}

// Simulate runs a world for up to maxFrames frames of dt each, using a
// synthetic clock so the run is reproducible for a given seed.
func Simulate(cfg Config, seed int64, dt time.Duration, maxFrames int) Outcome {
	world := NewWithConfig(cfg)
	world.Reset(seed)
	out := Outcome{Seed: seed}

	now := time.Unix(0, 0)
	world.Step(now)
	for i := 0; i < maxFrames; i++ {
		now = now.Add(dt)
		report := world.Step(now)
		out.Conversions += report.Conversions
		if report.Homogeneous {
			out.Decided = true
			out.HomogeneousAt = report.Frame
			for _, k := range Kinds {
				if report.Population[k] > 0 {
					out.Winner = k
				}
			}
		}
		if report.Done {
			out.DrainedAt = report.Frame
			break
		}
	}
	out.Frames = world.Frame()
	return out
}

// Sweep runs Simulate once per seed using at most workers goroutines. Results
// keep the order of seeds.
func Sweep(ctx context.Context, cfg Config, seeds []int64, workers int, dt time.Duration, maxFrames int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Outcome, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Simulate(cfg, seed, dt, maxFrames)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates sweep outcomes.
type Summary struct {
	Runs      int
	Wins      [KindCount]int
	Undecided int

	MeanHomogeneousAt float64
	MeanDrainedAt     float64
}

// Summarize aggregates outcomes. Means only consider runs that reached the
// respective milestone.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Runs: len(outcomes)}
	var decided, drained int
	var sumDecided, sumDrained float64
	for _, o := range outcomes {
		if !o.Decided {
			s.Undecided++
			continue
		}
		s.Wins[o.Winner]++
		decided++
		sumDecided += float64(o.HomogeneousAt)
		if o.DrainedAt > 0 {
			drained++
			sumDrained += float64(o.DrainedAt)
		}
	}
	if decided > 0 {
		s.MeanHomogeneousAt = sumDecided / float64(decided)
	}
	if drained > 0 {
		s.MeanDrainedAt = sumDrained / float64(drained)
	}
	return s
}
