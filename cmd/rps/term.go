package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rps-arena/internal/sims/rps"
	"rps-arena/internal/tui"
)

var (
	flagLogFile string
	flagFPS     int
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the arena in the terminal",
	Long: `Runs the arena inside the terminal. The whole arena is scaled onto the
terminal, so each cell covers several arena units.

Controls:
  Space   - Pause / resume
  N       - Single step while paused
  R       - Reset with the same seed
  S       - Reset with a new seed
  ?       - Toggle full help
  Q/Esc   - Quit`,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
	termCmd.Flags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
}

func runTerm(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg, src, err := resolveConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "variant", cfg.Variant, "source", src, "seed", cfg.Seed)

	world := rps.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	width, height := tui.TerminalSize()
	return tui.Run(world, world.HalfExtent(), tui.Options{
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		Seed:     cfg.Seed,
		Logger:   logger,
	})
}
