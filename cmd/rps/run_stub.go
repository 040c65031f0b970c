//go:build !ebiten

package main

import (
	"github.com/spf13/cobra"

	"rps-arena/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the arena in a window (requires -tags ebiten)",
	Long: `The window build of rps requires the ebiten build tag.
Re-run with 'go run -tags ebiten ./cmd/rps run' or use 'rps term'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ErrNoWindow
	},
}
