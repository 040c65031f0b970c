// Package events turns frame reports into structured log lines.
package events

import (
	"github.com/charmbracelet/log"

	"rps-arena/internal/core"
	"rps-arena/internal/sims/rps"
)

// Reporter logs the milestones of a run. It is not safe for concurrent use.
type Reporter struct {
	logger *log.Logger
	sim    string

	conversions int
	removed     int
}

// NewReporter returns a Reporter writing to logger. A nil logger discards.
func NewReporter(logger *log.Logger, sim string) *Reporter {
	return &Reporter{logger: logger, sim: sim}
}

// Observe records one frame report.
func (r *Reporter) Observe(rep core.FrameReport) {
	if r == nil || !rep.Advanced {
		return
	}
	r.conversions += rep.Conversions
	r.removed += rep.Removed
	if r.logger == nil {
		return
	}
	if rep.Conversions > 0 {
		r.logger.Debug("conversions", "sim", r.sim, "frame", rep.Frame, "count", rep.Conversions, "population", population(rep))
	}
	if rep.Homogeneous {
		r.logger.Info("population homogeneous", "sim", r.sim, "frame", rep.Frame, "winner", Winner(rep))
	}
	if rep.Done {
		r.logger.Info("arena drained", "sim", r.sim, "frame", rep.Frame, "removed", r.removed)
	}
}

// Reset logs a restart and clears the counters.
func (r *Reporter) Reset(seed int64) {
	if r == nil {
		return
	}
	r.conversions = 0
	r.removed = 0
	if r.logger != nil {
		r.logger.Info("reset", "sim", r.sim, "seed", seed)
	}
}

// Conversions returns the total number of conversions observed since Reset.
func (r *Reporter) Conversions() int { return r.conversions }

// Winner names the only kind with a live population, or "none".
func Winner(rep core.FrameReport) string {
	winner := "none"
	for _, k := range rps.Kinds {
		if rep.Population[k] == 0 {
			continue
		}
		if winner != "none" {
			return "none"
		}
		winner = k.String()
	}
	return winner
}

func population(rep core.FrameReport) map[string]int {
	out := make(map[string]int, rps.KindCount)
	for _, k := range rps.Kinds {
		out[k.String()] = rep.Population[k]
	}
	return out
}
