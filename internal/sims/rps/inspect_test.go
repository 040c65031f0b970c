package rps

import (
	"testing"

	"rps-arena/internal/core"
)

func TestDrainBoundExtendsArenaByHalfFootprint(t *testing.T) {
	w := New()
	half := w.HalfExtent()
	if got := w.DrainBound(); got != core.V(half.X+0.5, half.Y+0.5) {
		t.Fatalf("unexpected drain bound %+v", got)
	}
	if w.Footprint() != 1 {
		t.Fatalf("expected footprint 1, got %f", w.Footprint())
	}
}

func TestMotionsReuseBuffer(t *testing.T) {
	w := newWorldWith(stillConfig(), ent(0, Rock, 1, 2), ent(1, Paper, -3, 4))
	buf := make([]core.Motion, 0, 4)
	got := w.Motions(buf[:0])
	if len(got) != 2 || got[1].Pos != core.V(-3, 4) || got[0].Vel != core.V(1, 0) {
		t.Fatalf("unexpected motions %+v", got)
	}
	if &got[0] != &buf[:1][0] {
		t.Fatal("Motions should append into the provided buffer")
	}
}
