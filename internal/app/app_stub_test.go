//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"rps-arena/internal/core"
	"rps-arena/internal/sims/rps"
)

func TestStubReportsMissingTag(t *testing.T) {
	w := rps.New()
	game, err := New(w, w.Config().Window, 240, 1, nil)
	if !errors.Is(err, ErrNoWindow) || game != nil {
		t.Fatalf("expected ErrNoWindow, got %v", err)
	}
	var stub Game
	if err := stub.Update(); !errors.Is(err, ErrNoWindow) {
		t.Fatalf("expected ErrNoWindow from Update, got %v", err)
	}
	var _ core.Sim = w
}
