package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"rps-arena/internal/sims/rps"
)

var (
	flagRuns           int
	flagWorkers        int
	flagSweepDT        time.Duration
	flagSweepMaxFrames int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Simulate many seeds in parallel and summarize the winners",
	Long: `Runs --runs arenas with consecutive seeds starting at the configured seed
and prints each outcome followed by the win distribution per kind.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&flagRuns, "runs", 32, "Number of seeds to simulate")
	sweepCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Number of worker goroutines")
	sweepCmd.Flags().DurationVar(&flagSweepDT, "dt", time.Second/60, "Simulated time per frame")
	sweepCmd.Flags().IntVar(&flagSweepMaxFrames, "max-frames", 36000, "Frame limit per run")
}

// seedRange returns n consecutive seeds starting at base, skipping zero.
func seedRange(base int64, n int) []int64 {
	seeds := make([]int64, 0, max(n, 0))
	for s := base; len(seeds) < n; s++ {
		if s == 0 {
			continue
		}
		seeds = append(seeds, s)
	}
	return seeds
}

func runSweep(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}
	cfg, src, err := resolveConfig()
	if err != nil {
		return err
	}
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}
	if flagSweepDT <= 0 {
		return fmt.Errorf("--dt must be positive, got %s", flagSweepDT)
	}
	seeds := seedRange(cfg.Seed, flagRuns)
	logger.Info("sweep started", "variant", cfg.Variant, "source", src, "runs", len(seeds), "workers", flagWorkers)

	start := time.Now()
	outcomes, err := rps.Sweep(cmd.Context(), cfg, seeds, flagWorkers, flagSweepDT, flagSweepMaxFrames)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %-9s %-10s %-10s %-8s %s\n", "seed", "winner", "uniform@", "drained@", "frames", "conversions")
	for _, o := range outcomes {
		winner := "-"
		if o.Decided {
			winner = o.Winner.String()
		}
		fmt.Fprintf(out, "%-12d %-9s %-10d %-10d %-8d %d\n", o.Seed, winner, o.HomogeneousAt, o.DrainedAt, o.Frames, o.Conversions)
	}

	s := rps.Summarize(outcomes)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "runs=%d undecided=%d\n", s.Runs, s.Undecided)
	for _, k := range rps.Kinds {
		share := 0.0
		if s.Runs > 0 {
			share = 100 * float64(s.Wins[k]) / float64(s.Runs)
		}
		fmt.Fprintf(out, "  %-9s %4d wins (%5.1f%%)\n", k, s.Wins[k], share)
	}
	fmt.Fprintf(out, "mean frames to uniform=%.1f drained=%.1f\n", s.MeanHomogeneousAt, s.MeanDrainedAt)
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
