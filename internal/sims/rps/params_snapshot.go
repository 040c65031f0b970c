package rps

import (
	"strconv"

	"rps-arena/internal/core"
)

var controls = []core.ParameterControl{
	{Key: "speed", Label: "Speed", Step: 0.25, Min: 0, Max: 10},
	{Key: "jitter", Label: "Jitter", Step: 0.005, Min: 0, Max: 0.25},
	{Key: "force_step", Label: "Force step", Step: 0.05, Min: 0, Max: 2},
	{Key: "max_velocity", Label: "Max velocity", Step: 0.1, Min: 0.1, Max: 5},
}

// Parameters reports the current configuration and state for display.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	pop := w.Population()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.TextParam("variant", "Variant", w.Name()),
				core.TextParam("policy", "Policy", string(w.cfg.Policy)),
				core.TextParam("phase", "Phase", w.phase.String()),
				core.TextParam("frame", "Frame", strconv.FormatUint(w.frame, 10)),
				core.IntParam("population", "Population", len(w.curr)),
			},
		},
		{
			Name: "Kinds",
			Params: []core.Parameter{
				core.IntParam("rock", "Rock", pop[Rock]),
				core.IntParam("paper", "Paper", pop[Paper]),
				core.IntParam("scissors", "Scissors", pop[Scissors]),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.FloatParam("speed", "Speed", p.Speed),
				core.FloatParam("jitter", "Jitter", p.Jitter),
				core.FloatParam("force_step", "Force step", p.ForceStep),
				core.FloatParam("max_velocity", "Max velocity", p.MaxVelocity),
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable while running.
func (w *World) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetFloatParameter updates a tunable, clamping it to the control's range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range controls {
		if c.Key == key {
			ctrl = c
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if value < ctrl.Min {
		value = ctrl.Min
	}
	if value > ctrl.Max {
		value = ctrl.Max
	}
	switch key {
	case "speed":
		w.cfg.Params.Speed = value
	case "jitter":
		w.cfg.Params.Jitter = value
	case "force_step":
		w.cfg.Params.ForceStep = value
	case "max_velocity":
		w.cfg.Params.MaxVelocity = value
	}
	return true
}
