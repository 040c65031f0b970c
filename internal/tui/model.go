package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"rps-arena/internal/core"
	"rps-arena/internal/events"
)

// chromeRows is the number of terminal rows reserved for status and help.
const chromeRows = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a terminal run.
type Options struct {
	Width    int
	Height   int
	TickRate int
	Seed     int64
	Logger   *log.Logger
}

// Model is the Bubble Tea model running one simulation.
type Model struct {
	sim      core.Sim
	screen   *Screen
	keys     KeyMap
	help     help.Model
	reporter *events.Reporter

	tickRate int
	seed     int64
	paused   bool
	quitting bool
	last     core.FrameReport
}

type skinLoader interface {
	LoadSkin(loader core.TextureLoader) error
}

// NewModel creates a model for sim sized to the given terminal dimensions.
func NewModel(sim core.Sim, half core.Vec2, opts Options) (Model, error) {
	screen := NewScreen(opts.Width, opts.Height-chromeRows, half)
	if loader, ok := sim.(skinLoader); ok {
		if err := loader.LoadSkin(screen); err != nil {
			return Model{}, fmt.Errorf("tui: %w", err)
		}
	}
	h := help.New()
	h.Width = opts.Width
	return Model{
		sim:      sim,
		screen:   screen,
		keys:     DefaultKeyMap(),
		help:     h,
		reporter: events.NewReporter(opts.Logger, sim.Name()),
		tickRate: opts.TickRate,
		seed:     opts.Seed,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and advances the simulation on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-chromeRows)
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			m.sim.ResetClock()
		}
	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.stepOnce(time.Now())
		}
	case key.Matches(msg, m.keys.Reset):
		m.reset(m.seed)
	case key.Matches(msg, m.keys.Reseed):
		m.reset(time.Now().UnixNano())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) reset(seed int64) {
	m.seed = seed
	m.sim.Reset(seed)
	m.reporter.Reset(seed)
	m.last = core.FrameReport{}
}

// stepOnce advances exactly one tick interval ending at now.
func (m *Model) stepOnce(now time.Time) {
	rate := m.tickRate
	if rate <= 0 {
		rate = 30
	}
	m.sim.ResetClock()
	m.sim.Step(now.Add(-time.Second / time.Duration(rate)))
	m.observe(m.sim.Step(now))
}

func (m *Model) observe(rep core.FrameReport) {
	m.reporter.Observe(rep)
	m.last = rep
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.paused {
		m.observe(m.sim.Step(now))
	}
	if m.sim.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the arena, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.sim.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.screen.Render())
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) status() string {
	pop := m.last.Population
	line := statusStyle.Render(fmt.Sprintf("%s  frame %d  rock %d  paper %d  scissors %d",
		m.sim.Name(), m.last.Frame, pop[0], pop[1], pop[2]))
	if m.paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line
}

// TerminalSize returns the size of stdout, falling back to 80x24.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Run starts the Bubble Tea program for sim and blocks until it exits.
func Run(sim core.Sim, half core.Vec2, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = TerminalSize()
	}
	model, err := NewModel(sim, half, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
