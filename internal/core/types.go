package core

import (
	"image/color"
	"time"
)

// Window describes the pixel size of the render target and how many pixels
// make up one arena unit.
type Window struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Title         string  `yaml:"title"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// HalfExtent returns half the arena size in simulation units.
func (w Window) HalfExtent() Vec2 {
	if w.PixelsPerUnit <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: float64(w.Width) / w.PixelsPerUnit / 2,
		Y: float64(w.Height) / w.PixelsPerUnit / 2,
	}
}

// TextureID is an opaque handle returned by a TextureLoader.
type TextureID int

// Surface is the narrow drawing contract a simulation renders through.
// Positions and dimensions are in arena units with the origin at the arena
// center.
type Surface interface {
	HalfExtent() Vec2
	Clear()
	FillRect(center, dim Vec2, c color.RGBA)
	DrawSprite(center, dim Vec2, tex TextureID)
	Present()
}

// TextureLoader is implemented by surfaces that can draw sprites.
type TextureLoader interface {
	LoadTexture(path string) (TextureID, error)
}

// FrameReport summarizes what a single Step did.
type FrameReport struct {
	// Advanced is false for the baseline frame and for frames after Done.
	Advanced bool
	Elapsed  time.Duration
	Frame    uint64

	Conversions int
	// Homogeneous is true only on the frame the population became uniform.
	Homogeneous bool
	Removed     int
	Done        bool

	Population [3]int
}

// Sim defines the contract shared by the window and terminal front ends.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step(now time.Time) FrameReport
	ResetClock()
	Done() bool
	Render(dst Surface)
}

// Motion is a position and velocity pair exposed for debug overlays.
type Motion struct {
	Pos Vec2
	Vel Vec2
}
