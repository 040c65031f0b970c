//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"rps-arena/internal/core"
	"rps-arena/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type motionProvider interface {
	Motions(dst []core.Motion) []core.Motion
}

type footprintProvider interface {
	Footprint() float64
}

type drainBoundProvider interface {
	DrainBound() core.Vec2
}

// Overlay draws optional debugging visuals on top of the arena.
type Overlay struct {
	sim  core.Sim
	view render.Viewport

	showVelocity  bool
	showFootprint bool
	showBound     bool

	pixel   *ebiten.Image
	motions []core.Motion
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, view render.Viewport) *Overlay {
	o := &Overlay{sim: sim, view: view}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFootprint = !o.showFootprint
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showBound = !o.showBound
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.view.PPU <= 0 {
		return
	}
	if o.showBound {
		if provider, ok := o.sim.(drainBoundProvider); ok {
			o.drawBound(screen, provider.DrainBound())
		}
	}
	provider, ok := o.sim.(motionProvider)
	if !ok || (!o.showVelocity && !o.showFootprint) {
		return
	}
	o.motions = provider.Motions(o.motions[:0])
	if o.showFootprint {
		if fp, ok := o.sim.(footprintProvider); ok {
			o.drawFootprints(screen, fp.Footprint())
		}
	}
	if o.showVelocity {
		o.drawVelocities(screen)
	}
}

func (o *Overlay) drawVelocities(screen *ebiten.Image) {
	const (
		headAngle = math.Pi / 6
		thickness = 1.5
	)
	col := color.RGBA{R: 120, G: 200, B: 240, A: 220}
	for _, m := range o.motions {
		speed := m.Vel.Len()
		if speed < 1e-6 {
			continue
		}
		sx, sy := o.view.ToScreen(m.Pos)
		tipX, tipY := o.view.ToScreen(m.Pos.Add(m.Vel))
		o.drawLine(screen, sx, sy, tipX, tipY, thickness, col)

		headLength := math.Min(o.view.PPU*0.35, math.Hypot(tipX-sx, tipY-sy)*0.5)
		angle := math.Atan2(tipY-sy, tipX-sx)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*headLength, tipY-math.Sin(angle+headAngle)*headLength, thickness, col)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*headLength, tipY-math.Sin(angle-headAngle)*headLength, thickness, col)
	}
}

// drawFootprints outlines the collision radius around each entity center.
func (o *Overlay) drawFootprints(screen *ebiten.Image, footprint float64) {
	if footprint <= 0 {
		return
	}
	const segments = 16
	col := color.RGBA{R: 240, G: 240, B: 120, A: 110}
	radius := footprint * o.view.PPU
	for _, m := range o.motions {
		cx, cy := o.view.ToScreen(m.Pos)
		prevX, prevY := cx+radius, cy
		for i := 1; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			x, y := cx+radius*math.Cos(a), cy+radius*math.Sin(a)
			o.drawLine(screen, prevX, prevY, x, y, 1, col)
			prevX, prevY = x, y
		}
	}
}

func (o *Overlay) drawBound(screen *ebiten.Image, bound core.Vec2) {
	col := color.RGBA{R: 255, G: 120, B: 40, A: 200}
	x0, y0 := o.view.ToScreen(core.V(-bound.X, bound.Y))
	x1, y1 := o.view.ToScreen(core.V(bound.X, -bound.Y))
	o.drawLine(screen, x0, y0, x1, y0, 2, col)
	o.drawLine(screen, x1, y0, x1, y1, 2, col)
	o.drawLine(screen, x1, y1, x0, y1, 2, col)
	o.drawLine(screen, x0, y1, x0, y0, 2, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
