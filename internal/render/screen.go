//go:build ebiten

package render

import (
	"fmt"
	"image/color"
	_ "image/png"

	"rps-arena/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen draws arena primitives onto an ebiten image.
type Screen struct {
	view       Viewport
	target     *ebiten.Image
	background color.RGBA
	textures   []*ebiten.Image
}

// NewScreen creates a surface for the given window.
func NewScreen(w core.Window) *Screen {
	return &Screen{view: NewViewport(w), background: color.RGBA{A: 255}}
}

// Viewport exposes the arena to pixel mapping.
func (s *Screen) Viewport() Viewport { return s.view }

// SetTarget selects the image the next frame is drawn onto.
func (s *Screen) SetTarget(img *ebiten.Image) { s.target = img }

// HalfExtent returns half the arena size in arena units.
func (s *Screen) HalfExtent() core.Vec2 { return s.view.Half }

// Clear fills the target with the background color.
func (s *Screen) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(s.background)
}

// FillRect draws a solid box centered at center.
func (s *Screen) FillRect(center, dim core.Vec2, c color.RGBA) {
	if s.target == nil {
		return
	}
	x, y, w, h := s.view.Rect(center, dim)
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawSprite draws a loaded texture stretched over the box centered at center.
func (s *Screen) DrawSprite(center, dim core.Vec2, tex core.TextureID) {
	if s.target == nil || int(tex) < 0 || int(tex) >= len(s.textures) {
		return
	}
	img := s.textures[tex]
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	x, y, w, h := s.view.Rect(center, dim)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
}

// Present is a no-op; ebiten presents the frame after Draw returns.
func (s *Screen) Present() {}

// LoadTexture decodes an image file and returns its handle.
func (s *Screen) LoadTexture(path string) (core.TextureID, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return 0, fmt.Errorf("render: load texture %s: %w", path, err)
	}
	s.textures = append(s.textures, img)
	return core.TextureID(len(s.textures) - 1), nil
}
