//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"rps-arena/internal/app"
	"rps-arena/internal/sims/rps"
)

var (
	flagHUDWidth int
	flagTPS      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the arena in a window",
	Long: `Opens the arena in a window and runs until it drains or you quit.

Controls:
  Space   - Pause / resume
  N       - Single step while paused
  R       - Reset with the same seed
  S       - Reset with a new seed
  1 2 3   - Toggle velocity, footprint and drain bound overlays
  Q/Esc   - Quit`,
	RunE: runWindow,
}

func init() {
	runCmd.Flags().IntVar(&flagHUDWidth, "hud-width", 240, "Width of the parameter panel in pixels (0 hides it)")
	runCmd.Flags().IntVar(&flagTPS, "tps", 60, "Update rate (ticks per second)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
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

	game, err := app.New(world, cfg.Window, flagHUDWidth, cfg.Seed, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title + " - " + world.Name())
	ebiten.SetTPS(flagTPS)
	ebiten.SetWindowSize(cfg.Window.Width+max(flagHUDWidth, 0), cfg.Window.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
