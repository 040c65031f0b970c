package rps

import (
	"errors"
	"image/color"
	"testing"

	"rps-arena/internal/core"
)

type recordingSurface struct {
	cleared, presented int
	rects              []color.RGBA
	sprites            []core.TextureID
	loaded             []string
	failOn             string
}

func (s *recordingSurface) HalfExtent() core.Vec2 { return core.V(10, 10) }
func (s *recordingSurface) Clear()                { s.cleared++ }
func (s *recordingSurface) Present()              { s.presented++ }
func (s *recordingSurface) FillRect(_, _ core.Vec2, c color.RGBA) {
	s.rects = append(s.rects, c)
}
func (s *recordingSurface) DrawSprite(_, _ core.Vec2, tex core.TextureID) {
	s.sprites = append(s.sprites, tex)
}
func (s *recordingSurface) LoadTexture(path string) (core.TextureID, error) {
	if path == s.failOn {
		return 0, errors.New("missing")
	}
	s.loaded = append(s.loaded, path)
	return core.TextureID(len(s.loaded)), nil
}

func TestRenderDrawsRectsInKindColors(t *testing.T) {
	w := newWorldWith(stillConfig(), ent(0, Rock, 0, 0), ent(1, Scissors, 3, 0))
	s := &recordingSurface{}
	w.Render(s)
	if s.cleared != 1 || s.presented != 1 {
		t.Fatalf("render should clear and present once, got %d/%d", s.cleared, s.presented)
	}
	if len(s.rects) != 2 || s.rects[0] != KindColor(Rock) || s.rects[1] != KindColor(Scissors) {
		t.Fatalf("unexpected rect colors %v", s.rects)
	}
}

func TestRenderDrawsSpritesAfterLoadSkin(t *testing.T) {
	cfg, _ := Preset("sprites")
	w := newWorldWith(cfg, ent(0, Paper, 0, 0), ent(1, Rock, 3, 0))
	s := &recordingSurface{}
	if err := w.LoadSkin(s); err != nil {
		t.Fatal(err)
	}
	if len(s.loaded) != KindCount {
		t.Fatalf("expected one texture per kind, got %v", s.loaded)
	}
	w.Render(s)
	if len(s.rects) != 0 || len(s.sprites) != 2 {
		t.Fatalf("sprite style should draw sprites only, got %d rects %d sprites", len(s.rects), len(s.sprites))
	}
	if s.sprites[0] != core.TextureID(2) || s.sprites[1] != core.TextureID(1) {
		t.Fatalf("sprites not matched to kinds: %v", s.sprites)
	}
}

func TestLoadSkinWrapsLoaderErrors(t *testing.T) {
	cfg, _ := Preset("sprites")
	w := NewWithConfig(cfg)
	s := &recordingSurface{failOn: cfg.Render.TexturePath(Scissors)}
	if err := w.LoadSkin(s); err == nil {
		t.Fatal("expected texture load failure")
	}
}
