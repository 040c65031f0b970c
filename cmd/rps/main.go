// rps runs a rock-paper-scissors particle arena.
//
// Usage:
//
//	rps list                - List the built-in variants
//	rps run                 - Open the arena in a window (requires -tags ebiten)
//	rps term                - Run the arena in the terminal
//	rps headless            - Simulate without output until the arena drains
//	rps sweep               - Simulate many seeds in parallel and summarize winners
//
// Global flags:
//
//	--variant <name>        - Variant preset (default: bounce)
//	--config <path>         - YAML overlay (default search: ~/.rps/config.yaml, ./configs/rps.yaml)
//	--seed <value>          - RNG seed (0 = configured seed)
//	--set key=value         - Override a single setting, repeatable
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rps-arena/internal/config"
	"rps-arena/internal/sims/rps"
)

var (
	// Global flags
	flagVariant  string
	flagConfig   string
	flagSeed     int64
	flagSet      []string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "Rock paper scissors particle arena",
	Long: `rps fills an arena with rocks, papers and scissors that move, collide and
convert each other until a single kind remains.

Examples:
  rps list
  rps run --variant flock
  rps term --variant chase --set population=80
  rps headless --variant tribes --seed 7
  rps sweep --variant flock --runs 64`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Variant preset (see 'rps list')")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config overlay")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = configured seed)")
	rootCmd.PersistentFlags().StringArrayVar(&flagSet, "set", nil, "Override a setting as key=value (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(sweepCmd)
}

// resolveConfig builds the configuration from the global flags.
func resolveConfig() (rps.Config, config.Source, error) {
	overrides, err := config.ParseOverrides(flagSet)
	if err != nil {
		return rps.Config{}, "", err
	}
	return config.Resolve(config.Options{
		Path:      flagConfig,
		Variant:   flagVariant,
		Seed:      flagSeed,
		Overrides: overrides,
	})
}
