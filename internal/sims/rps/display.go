package rps

import (
	"fmt"
	"image/color"

	"rps-arena/internal/core"
)

var kindPalette = [KindCount]color.RGBA{
	Rock:     {R: 128, G: 128, B: 128, A: 255},
	Paper:    {R: 179, G: 179, B: 102, A: 255},
	Scissors: {R: 204, G: 77, B: 77, A: 255},
}

// KindColor returns the fill color for k.
func KindColor(k Kind) color.RGBA {
	if int(k) >= len(kindPalette) {
		return color.RGBA{A: 255}
	}
	return kindPalette[k]
}

// LoadSkin prepares sprite textures when the configured style asks for them.
// Rect styles need nothing and ignore loader.
func (w *World) LoadSkin(loader core.TextureLoader) error {
	if w.cfg.Render.Style != StyleSprite {
		w.sprites = false
		return nil
	}
	if loader == nil {
		return fmt.Errorf("rps: sprite style requires a texture loader")
	}
	for _, k := range Kinds {
		path := w.cfg.Render.TexturePath(k)
		id, err := loader.LoadTexture(path)
		if err != nil {
			return fmt.Errorf("rps: load %s texture %s: %w", k, path, err)
		}
		w.textures[k] = id
	}
	w.sprites = true
	return nil
}

// Render draws every live entity onto dst. It never mutates the world.
func (w *World) Render(dst core.Surface) {
	dst.Clear()
	dim := core.V(w.cfg.EntitySize, w.cfg.EntitySize)
	for _, e := range w.curr {
		if w.sprites {
			dst.DrawSprite(e.Pos, dim, w.textures[e.Kind])
			continue
		}
		dst.FillRect(e.Pos, dim, KindColor(e.Kind))
	}
	dst.Present()
}
