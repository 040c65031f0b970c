//go:build ebiten

package app

import (
	"fmt"
	"io"
	"time"

	"rps-arena/internal/core"
	"rps-arena/internal/events"
	"rps-arena/internal/render"
	"rps-arena/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type skinLoader interface {
	LoadSkin(loader core.TextureLoader) error
}

// Game adapts a simulation to the ebiten.Game interface.
type Game struct {
	sim      core.Sim
	screen   *render.Screen
	overlay  *ui.Overlay
	hud      *ui.HUD
	reporter *events.Reporter
	logger   *log.Logger

	arenaW int
	arenaH int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. Sprite textures are
// loaded here so a missing file fails before the window opens.
func New(sim core.Sim, window core.Window, hudWidth int, seed int64, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := render.NewScreen(window)
	if loader, ok := sim.(skinLoader); ok {
		if err := loader.LoadSkin(screen); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}
	w, h := screen.Viewport().Size()
	return &Game{
		sim:      sim,
		screen:   screen,
		overlay:  ui.NewOverlay(sim, screen.Viewport()),
		hud:      ui.NewHUD(sim, hudWidth),
		reporter: events.NewReporter(logger, sim.Name()),
		logger:   logger,
		arenaW:   w,
		arenaH:   h,
		seed:     seed,
	}, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.reporter.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.arenaW)

	now := time.Now()
	switch {
	case !g.paused:
		g.reporter.Observe(g.sim.Step(now))
	case g.tickOnce:
		// A single step advances exactly one tick regardless of wall time.
		g.sim.ResetClock()
		g.sim.Step(now.Add(-time.Second / time.Duration(ebiten.TPS())))
		g.reporter.Observe(g.sim.Step(now))
		g.tickOnce = false
	}

	if g.sim.Done() {
		g.logger.Info("simulation finished", "sim", g.sim.Name(), "conversions", g.reporter.Conversions())
		return ebiten.Termination
	}
	return nil
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if !g.paused {
		g.sim.ResetClock()
	}
	g.logger.Debug("pause toggled", "paused", g.paused)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.SetTarget(screen)
	g.sim.Render(g.screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.arenaW, g.arenaH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.arenaW + g.hud.Width(), g.arenaH
}
