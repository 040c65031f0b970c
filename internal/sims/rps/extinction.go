package rps

import "math"

// uniform reports whether every entity shares the kind of the last one
// processed by the collision pass.
func (w *World) uniform() bool {
	if len(w.curr) == 0 {
		return false
	}
	kind := w.curr[len(w.curr)-1].Kind
	for _, e := range w.curr {
		if e.Kind != kind {
			return false
		}
	}
	return true
}

// beginDraining reverses every entity and switches to the terminal phase.
func (w *World) beginDraining() {
	for i := range w.curr {
		w.curr[i].Vel = w.curr[i].Vel.Neg()
	}
	w.homogeneous = true
	w.phase = PhaseDraining
}

// drain removes entities strictly outside the arena extended by half a
// footprint and returns how many were removed.
func (w *World) drain() int {
	boundX := w.half.X + w.halfDim
	boundY := w.half.Y + w.halfDim
	kept := w.curr[:0]
	for _, e := range w.curr {
		if math.Abs(e.Pos.X) > boundX || math.Abs(e.Pos.Y) > boundY {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(w.curr) - len(kept)
	w.curr = kept
	return removed
}
