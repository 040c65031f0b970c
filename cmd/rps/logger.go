package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at the level named by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rps",
		Level:           level,
	}), nil
}

// stderrLogger is the logger used by every command that does not own the terminal.
func stderrLogger() (*log.Logger, error) {
	return newLogger(os.Stderr)
}
