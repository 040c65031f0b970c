package rps

import (
	"math"

	"rps-arena/internal/core"
)

// steer applies the configured steering policy. Positions and kinds are not
// modified here, so every entity sees the same snapshot of its neighbours.
func (w *World) steer() {
	switch w.cfg.Policy {
	case PolicyPursuit:
		for i := range w.curr {
			w.pursue(i)
		}
	case PolicyFlock:
		for i := range w.curr {
			w.flock(i)
		}
	}
}

// pursue points entity i directly away from its nearest prey. Without prey in
// the arena the heading is left alone.
func (w *World) pursue(i int) {
	self := &w.curr[i]
	prey := self.Kind.Prey()
	target := -1
	best := math.Inf(1)
	for j := range w.curr {
		if j == i || w.curr[j].Kind != prey {
			continue
		}
		if d := self.Pos.Dist(w.curr[j].Pos); d < best {
			best = d
			target = j
		}
	}
	if target < 0 {
		return
	}
	away := self.Pos.Sub(w.curr[target].Pos).Normalize()
	if away == (core.Vec2{}) {
		return
	}
	self.Vel = away
}

// flock accumulates the hunt/flee force acting on entity i, nudges its
// velocity by ForceStep along it and caps the result at MaxVelocity.
func (w *World) flock(i int) {
	self := &w.curr[i]
	var force core.Vec2
	for j := range w.curr {
		if j == i {
			continue
		}
		other := w.curr[j]
		diff := self.Pos.Sub(other.Pos)
		dist := diff.Len()
		if dist == 0 {
			continue
		}
		toSelf := diff.Scale(1 / dist)
		magnitude := self.Kind.ForceFrom(other.Kind, w.cfg.Params.Forces) * dist
		force = force.Add(toSelf.Neg().Scale(magnitude))
	}
	if force != (core.Vec2{}) {
		self.Vel = self.Vel.Add(force.Normalize().Scale(w.cfg.Params.ForceStep))
	}
	self.Vel = self.Vel.ClampLen(w.cfg.Params.MaxVelocity)
}
