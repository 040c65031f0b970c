package render

import (
	"image"
	"math"

	"rps-arena/internal/core"
)

// Viewport maps arena coordinates (origin at the center, y up) to pixel
// coordinates (origin top-left, y down).
type Viewport struct {
	Half core.Vec2
	PPU  float64
}

// NewViewport builds the mapping for a window.
func NewViewport(w core.Window) Viewport {
	return Viewport{Half: w.HalfExtent(), PPU: w.PixelsPerUnit}
}

// ToScreen converts an arena position to pixel coordinates.
func (v Viewport) ToScreen(p core.Vec2) (float64, float64) {
	return (p.X + v.Half.X) * v.PPU, (v.Half.Y - p.Y) * v.PPU
}

// ToArena converts pixel coordinates back to an arena position.
func (v Viewport) ToArena(x, y float64) core.Vec2 {
	if v.PPU <= 0 {
		return core.Vec2{}
	}
	return core.V(x/v.PPU-v.Half.X, v.Half.Y-y/v.PPU)
}

// Rect returns the top-left corner and size in pixels of a box centered at
// center with the given dimensions in arena units.
func (v Viewport) Rect(center, dim core.Vec2) (x, y, w, h float64) {
	cx, cy := v.ToScreen(center)
	w = dim.X * v.PPU
	h = dim.Y * v.PPU
	return cx - w/2, cy - h/2, w, h
}

// Bounds returns the pixel rectangle covered by a box, rounded outward.
func (v Viewport) Bounds(center, dim core.Vec2) image.Rectangle {
	x, y, w, h := v.Rect(center, dim)
	return image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
}

// Size returns the pixel dimensions of the whole arena.
func (v Viewport) Size() (int, int) {
	return int(math.Round(2 * v.Half.X * v.PPU)), int(math.Round(2 * v.Half.Y * v.PPU))
}
