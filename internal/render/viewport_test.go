package render

import (
	"image"
	"math"
	"testing"

	"rps-arena/internal/core"
)

func defaultViewport() Viewport {
	return NewViewport(core.Window{Width: 1280, Height: 960, PixelsPerUnit: 24})
}

func TestToScreenCornersAndCenter(t *testing.T) {
	v := defaultViewport()
	cases := []struct {
		arena  core.Vec2
		px, py float64
	}{
		{core.V(0, 0), 640, 480},
		{v.Half.Neg(), 0, 960},
		{v.Half, 1280, 0},
		{core.V(1, 1), 664, 456},
	}
	for _, c := range cases {
		x, y := v.ToScreen(c.arena)
		if math.Abs(x-c.px) > 1e-9 || math.Abs(y-c.py) > 1e-9 {
			t.Fatalf("%+v mapped to (%f, %f), want (%f, %f)", c.arena, x, y, c.px, c.py)
		}
	}
}

func TestToArenaInvertsToScreen(t *testing.T) {
	v := defaultViewport()
	p := core.V(-3.25, 12.5)
	x, y := v.ToScreen(p)
	back := v.ToArena(x, y)
	if back.Dist(p) > 1e-9 {
		t.Fatalf("round trip drifted: %+v -> %+v", p, back)
	}
	if (Viewport{}).ToArena(10, 10) != (core.Vec2{}) {
		t.Fatal("zero viewport should map to origin")
	}
}

func TestRectCentersOnEntity(t *testing.T) {
	v := defaultViewport()
	x, y, w, h := v.Rect(core.V(0, 0), core.V(1, 1))
	if math.Abs(x-628) > 1e-9 || math.Abs(y-468) > 1e-9 || w != 24 || h != 24 {
		t.Fatalf("unexpected rect %f %f %f %f", x, y, w, h)
	}
	if got := v.Bounds(core.V(0, 0), core.V(1, 1)); got != image.Rect(628, 468, 652, 492) {
		t.Fatalf("unexpected bounds %v", got)
	}
}

func TestSize(t *testing.T) {
	w, h := defaultViewport().Size()
	if w != 1280 || h != 960 {
		t.Fatalf("expected 1280x960, got %dx%d", w, h)
	}
}
