package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rps-arena/internal/events"
	"rps-arena/internal/sims/rps"
)

var (
	flagDT        time.Duration
	flagMaxFrames int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Simulate one arena without rendering",
	Long: `Runs one arena on a synthetic clock, logging conversions and milestones,
until it drains or --max-frames is reached. The same seed and --dt always
produce the same run.`,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().DurationVar(&flagDT, "dt", time.Second/60, "Simulated time per frame")
	headlessCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 36000, "Stop after this many frames")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}
	cfg, src, err := resolveConfig()
	if err != nil {
		return err
	}
	if flagDT <= 0 {
		return fmt.Errorf("--dt must be positive, got %s", flagDT)
	}
	logger.Info("config loaded", "variant", cfg.Variant, "source", src, "seed", cfg.Seed)

	world := rps.NewWithConfig(cfg)
	world.Reset(cfg.Seed)
	reporter := events.NewReporter(logger, world.Name())

	start := time.Now()
	now := time.Unix(0, 0)
	world.Step(now)
	for i := 0; i < flagMaxFrames && !world.Done(); i++ {
		now = now.Add(flagDT)
		reporter.Observe(world.Step(now))
	}

	pop := world.Population()
	fmt.Fprintf(cmd.OutOrStdout(), "variant=%s seed=%d frames=%d phase=%s homogeneous=%t done=%t conversions=%d rock=%d paper=%d scissors=%d\n",
		world.Name(), cfg.Seed, world.Frame(), world.Phase(), world.Homogeneous(), world.Done(),
		reporter.Conversions(), pop[rps.Rock], pop[rps.Paper], pop[rps.Scissors])
	logger.Debug("headless run finished", "wall", time.Since(start))
	return nil
}
