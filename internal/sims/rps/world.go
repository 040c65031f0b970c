package rps

import (
	"time"

	"rps-arena/internal/core"
	"rps-arena/internal/jitter"
)

// Phase is the extinction state of a world.
type Phase uint8

const (
	// PhaseActive runs walls, collisions and steering.
	PhaseActive Phase = iota
	// PhaseDraining lets entities leave the arena until none remain.
	PhaseDraining
)

func (p Phase) String() string {
	if p == PhaseDraining {
		return "draining"
	}
	return "active"
}

// World owns every entity and advances them one frame at a time.
type World struct {
	cfg Config

	half    core.Vec2
	halfDim float64

	// curr holds the live entities; next is the rebuild target of the
	// collision pass. They never share a backing array.
	curr []Entity
	next []Entity

	jitter *jitter.Revolver
	clock  core.FrameClock

	phase       Phase
	homogeneous bool
	done        bool
	frame       uint64

	sprites  bool
	textures [KindCount]core.TextureID
}

// New returns a world using the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a world configured from cfg. The world is empty until
// Reset is called.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		half:    cfg.Window.HalfExtent(),
		halfDim: cfg.EntitySize / 2,
	}
	w.jitter = jitter.New(core.NewRNG(cfg.Seed))
	return w
}

// Name returns the variant identifier.
func (w *World) Name() string {
	if w.cfg.Variant == "" {
		return "rps"
	}
	return w.cfg.Variant
}

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// HalfExtent returns half the arena size in simulation units.
func (w *World) HalfExtent() core.Vec2 { return w.half }

// Entities exposes the live entities. Callers must treat the slice as read-only
// and must not retain it across Step calls.
func (w *World) Entities() []Entity { return w.curr }

// Phase reports the extinction state.
func (w *World) Phase() Phase { return w.phase }

// Homogeneous reports whether the population has become a single kind.
func (w *World) Homogeneous() bool { return w.homogeneous }

// Done reports whether the population has fully drained.
func (w *World) Done() bool { return w.done }

// Frame returns the number of frames that advanced simulated time.
func (w *World) Frame() uint64 { return w.frame }

// Population counts the live entities per kind.
func (w *World) Population() [KindCount]int {
	var counts [KindCount]int
	for _, e := range w.curr {
		counts[e.Kind]++
	}
	return counts
}

// Reset repopulates the arena. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := core.NewRNG(effective)
	w.jitter = jitter.New(rng)
	w.clock.Reset()
	w.phase = PhaseActive
	w.homogeneous = false
	w.done = false
	w.frame = 0

	n := w.cfg.Population
	if n < 0 {
		n = 0
	}
	w.curr = make([]Entity, 0, n)
	w.next = make([]Entity, 0, n)
	w.populate(rng, n)
}

// SetEntities replaces the population with a copy of ents and returns the
// world to the active phase. The clock baseline is kept.
func (w *World) SetEntities(ents []Entity) {
	w.curr = append(make([]Entity, 0, len(ents)), ents...)
	w.next = make([]Entity, 0, len(ents))
	w.phase = PhaseActive
	w.homogeneous = false
	w.done = false
}

// ResetClock drops the previous frame timestamp, so the next Step only
// records a new baseline. Used when resuming from pause.
func (w *World) ResetClock() { w.clock.Reset() }

// Step advances the world to now. The first call only establishes the time
// baseline.
func (w *World) Step(now time.Time) core.FrameReport {
	report := core.FrameReport{Frame: w.frame, Done: w.done}
	if w.done {
		return report
	}
	elapsed, ok := w.clock.Tick(now)
	if !ok {
		report.Population = w.Population()
		return report
	}
	w.frame++

	w.integrate(elapsed.Seconds())

	switch w.phase {
	case PhaseActive:
		w.collideWalls()
		report.Conversions = w.collideEntities()
		w.steer()
		if report.Conversions > 0 && w.cfg.Extinction && w.uniform() {
			w.beginDraining()
			report.Homogeneous = true
		}
	case PhaseDraining:
		report.Removed = w.drain()
		if len(w.curr) == 0 {
			w.done = true
		}
	}

	report.Advanced = true
	report.Elapsed = elapsed
	report.Frame = w.frame
	report.Done = w.done
	report.Population = w.Population()
	return report
}

func (w *World) populate(rng *core.RNG, n int) {
	room := core.V(w.half.X-w.halfDim, w.half.Y-w.halfDim)
	band := 2 * room.X / KindCount
	for id := 0; id < n; id++ {
		kind := Kind(rng.IntN(KindCount))

		var pos core.Vec2
		switch w.cfg.Placement {
		case PlacementSegregated:
			minX := -room.X + float64(kind)*band
			pos = core.V(rng.Range(minX, minX+band), rng.Range(-room.Y, room.Y))
		default:
			pos = core.V(rng.Range(-room.X, room.X), rng.Range(-room.Y, room.Y))
		}

		heading := core.V(rng.Range(-room.X, room.X), rng.Range(-room.Y, room.Y)).Normalize()
		if heading == (core.Vec2{}) {
			heading = core.V(1, 0)
		}

		w.curr = append(w.curr, Entity{ID: id, Kind: kind, Pos: pos, Vel: heading})
	}
}
