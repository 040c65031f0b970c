package rps

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWithConfig(cfg)

	w.Reset(0)
	initial := slices.Clone(w.Entities())
	if len(initial) != cfg.Population {
		t.Fatalf("expected %d entities, got %d", cfg.Population, len(initial))
	}

	w.Entities()[0].Kind = (w.Entities()[0].Kind + 1) % KindCount
	w.Reset(0)
	if !slices.Equal(initial, w.Entities()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	w.Reset(777)
	seeded := slices.Clone(w.Entities())
	w.Reset(777)
	if !slices.Equal(seeded, w.Entities()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different populations")
	}
}

func TestResetPlacesInsideArena(t *testing.T) {
	for _, name := range []string{"bounce", "flock", "tribes"} {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		w := NewWithConfig(cfg)
		w.Reset(42)
		half := w.HalfExtent()
		for i, e := range w.Entities() {
			if e.ID != i {
				t.Fatalf("%s: ids must be sequential, slot %d has %d", name, i, e.ID)
			}
			if math.Abs(e.Pos.X) > half.X-0.5 || math.Abs(e.Pos.Y) > half.Y-0.5 {
				t.Fatalf("%s: entity %d placed outside the arena at %+v", name, e.ID, e.Pos)
			}
			if math.Abs(e.Vel.Len()-1) > 1e-9 {
				t.Fatalf("%s: initial heading must be a unit vector, got %+v", name, e.Vel)
			}
		}
	}
}

func TestSegregatedPlacementBands(t *testing.T) {
	cfg, _ := Preset("tribes")
	w := NewWithConfig(cfg)
	w.Reset(9)
	room := w.HalfExtent().X - cfg.EntitySize/2
	band := 2 * room / KindCount
	for _, e := range w.Entities() {
		minX := -room + float64(e.Kind)*band
		if e.Pos.X < minX || e.Pos.X > minX+band {
			t.Fatalf("%s at x=%f outside its band [%f, %f]", e.Kind, e.Pos.X, minX, minX+band)
		}
	}
}

func TestFirstStepOnlySetsBaseline(t *testing.T) {
	w := New()
	w.Reset(3)
	before := slices.Clone(w.Entities())

	r := w.Step(time.Unix(500, 0))
	if r.Advanced || r.Frame != 0 || w.Frame() != 0 {
		t.Fatalf("baseline frame must not advance, got %+v", r)
	}
	if !slices.Equal(before, w.Entities()) {
		t.Fatal("baseline frame must not move entities")
	}

	r = w.Step(time.Unix(500, 0).Add(16 * time.Millisecond))
	if !r.Advanced || r.Frame != 1 || r.Elapsed != 16*time.Millisecond {
		t.Fatalf("second frame should advance by 16ms, got %+v", r)
	}
}

func TestResetClockSkipsPausedTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Jitter = 0
	w := newWorldWith(cfg, ent(0, Rock, 0, 0))

	w.Step(epoch)
	w.Step(epoch.Add(100 * time.Millisecond))
	x := w.Entities()[0].Pos.X

	w.ResetClock()
	if r := w.Step(epoch.Add(time.Hour)); r.Advanced {
		t.Fatal("step after ResetClock must only set a new baseline")
	}
	if w.Entities()[0].Pos.X != x {
		t.Fatal("paused time must not be integrated")
	}
}

func TestThreeRocksScenarioThroughStep(t *testing.T) {
	w := newWorldWith(stillConfig(),
		ent(0, Rock, -20, 0), ent(1, Scissors, -19.5, 0),
		ent(2, Rock, 0, 0), ent(3, Scissors, 0.5, 0),
		ent(4, Rock, 20, 0), ent(5, Scissors, 20.5, 0),
		ent(6, Paper, -10, 10), ent(7, Paper, 0, 10), ent(8, Paper, 10, 10),
	)
	r := advance(w, 16*time.Millisecond)
	if r.Conversions == 0 {
		t.Fatal("conversion flag should be set")
	}
	if r.Population[Rock] != 6 || r.Population[Paper] != 3 || r.Population[Scissors] != 0 {
		t.Fatalf("unexpected population %v", r.Population)
	}
}

func TestPopulationCounts(t *testing.T) {
	w := newWorldWith(stillConfig(), ent(0, Rock, 0, 0), ent(1, Paper, 3, 0), ent(2, Paper, 6, 0))
	pop := w.Population()
	if pop[Rock] != 1 || pop[Paper] != 2 || pop[Scissors] != 0 {
		t.Fatalf("unexpected population %v", pop)
	}
}
