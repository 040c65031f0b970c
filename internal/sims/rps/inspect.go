package rps

import "rps-arena/internal/core"

// Footprint returns the edge length of every entity.
func (w *World) Footprint() float64 { return w.cfg.EntitySize }

// DrainBound returns the half extent beyond which draining entities are
// removed.
func (w *World) DrainBound() core.Vec2 {
	return core.V(w.half.X+w.halfDim, w.half.Y+w.halfDim)
}

// Motions appends the position and velocity of every live entity to dst.
func (w *World) Motions(dst []core.Motion) []core.Motion {
	for _, e := range w.curr {
		dst = append(dst, core.Motion{Pos: e.Pos, Vel: e.Vel})
	}
	return dst
}
