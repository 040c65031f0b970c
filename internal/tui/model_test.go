package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rps-arena/internal/core"
	"rps-arena/internal/sims/rps"
)

func newTestModel(t *testing.T, cfg rps.Config) (Model, *rps.World) {
	t.Helper()
	w := rps.NewWithConfig(cfg)
	w.Reset(0)
	m, err := NewModel(w, w.HalfExtent(), Options{Width: 40, Height: 20, TickRate: 30})
	if err != nil {
		t.Fatal(err)
	}
	return m, w
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTicksAdvanceTheWorld(t *testing.T) {
	m, w := newTestModel(t, rps.DefaultConfig())
	start := time.Unix(100, 0)
	next, cmd := m.Update(TickMsg(start))
	if cmd == nil || isQuit(cmd) {
		t.Fatal("tick should schedule the next tick")
	}
	next, _ = next.Update(TickMsg(start.Add(33 * time.Millisecond)))
	if w.Frame() != 1 {
		t.Fatalf("expected one advanced frame, got %d", w.Frame())
	}
	if got := next.(Model).last.Frame; got != 1 {
		t.Fatalf("model should keep the last report, got frame %d", got)
	}
}

func TestPauseStopsStepping(t *testing.T) {
	m, w := newTestModel(t, rps.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	start := time.Unix(100, 0)
	next, _ = next.Update(TickMsg(start))
	next, _ = next.Update(TickMsg(start.Add(time.Second)))
	if w.Frame() != 0 {
		t.Fatalf("paused model must not step, got frame %d", w.Frame())
	}
	next, _ = next.Update(runes("n"))
	if w.Frame() != 1 {
		t.Fatalf("single step should advance one frame, got %d", w.Frame())
	}
	if !next.(Model).paused {
		t.Fatal("single step keeps the model paused")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, rps.DefaultConfig())
	next, cmd := m.Update(runes("q"))
	if !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	if next.View() != "" {
		t.Fatal("quitting model should render nothing")
	}
}

func TestQuitsWhenDone(t *testing.T) {
	cfg := rps.DefaultConfig()
	cfg.Params.Jitter = 0
	cfg.Params.Speed = 40
	cfg.Extinction = true
	w := rps.NewWithConfig(cfg)
	w.SetEntities([]rps.Entity{
		{ID: 0, Kind: rps.Scissors, Vel: core.V(1, 0)},
		{ID: 1, Kind: rps.Paper, Pos: core.V(0.3, 0), Vel: core.V(0, 1)},
	})
	m, err := NewModel(w, w.HalfExtent(), Options{Width: 40, Height: 20})
	if err != nil {
		t.Fatal(err)
	}

	now := time.Unix(0, 0)
	var next tea.Model = m
	var cmd tea.Cmd
	next, _ = next.Update(TickMsg(now))
	now = now.Add(10 * time.Millisecond)
	next, _ = next.Update(TickMsg(now))
	if !w.Homogeneous() {
		t.Fatal("the pair should convert and become homogeneous")
	}
	for i := 0; i < 5 && !w.Done(); i++ {
		now = now.Add(time.Second)
		next, cmd = next.Update(TickMsg(now))
	}
	if !w.Done() {
		t.Fatal("reversed entities should leave the arena")
	}
	if !isQuit(cmd) {
		t.Fatal("model should quit once the arena drained")
	}
}

func TestResetRestoresPopulation(t *testing.T) {
	m, w := newTestModel(t, rps.DefaultConfig())
	first := w.Entities()[0]
	w.SetEntities(nil)
	m.Update(runes("r"))
	if len(w.Entities()) != 50 || w.Entities()[0] != first {
		t.Fatal("reset should repopulate with the same seed")
	}
}

func TestViewIncludesStatusAndHelp(t *testing.T) {
	m, _ := newTestModel(t, rps.DefaultConfig())
	view := m.View()
	for _, want := range []string{"bounce", "frame 0", "pause", "quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
