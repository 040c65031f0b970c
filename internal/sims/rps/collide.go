package rps

import "rps-arena/internal/core"

// Collides reports whether two entities overlap. The threshold is a single
// footprint width, so entities must overlap deeply to register.
func Collides(a, b core.Vec2, footprint float64) bool {
	return a.Dist(b) < footprint
}

// Convert applies the dominance table to a colliding pair and returns the new
// kinds. The losing side takes the winning kind; equal kinds are unchanged.
func Convert(self, other Kind) (Kind, Kind) {
	switch {
	case self.Beats(other):
		return self, self
	case other.Beats(self):
		return other, other
	default:
		return self, other
	}
}

// collideEntities resolves every unordered pair once and returns the number
// of kind changes. It pops one entity at a time off the live buffer, resolves
// it against the remaining ones and pushes it onto the rebuild buffer, so the
// live order is reversed after each pass. Later pairs see kinds converted by
// earlier ones.
func (w *World) collideEntities() int {
	conversions := 0
	pending := w.curr
	w.next = w.next[:0]
	for len(pending) > 0 {
		last := len(pending) - 1
		e := pending[last]
		pending = pending[:last]
		for i := range pending {
			other := &pending[i]
			if !Collides(e.Pos, other.Pos, w.cfg.EntitySize) {
				continue
			}
			a, b := Convert(e.Kind, other.Kind)
			if a != e.Kind || b != other.Kind {
				conversions++
			}
			e.Kind, other.Kind = a, b
		}
		w.next = append(w.next, e)
	}
	w.curr, w.next = w.next, w.curr
	return conversions
}
