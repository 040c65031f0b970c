package rps

import (
	"time"

	"rps-arena/internal/core"
)

var epoch = time.Unix(0, 0)

// stillConfig returns a config whose entities neither drift nor jitter, so
// tests fully control positions.
func stillConfig() Config {
	cfg := DefaultConfig()
	cfg.Params.Speed = 0
	cfg.Params.Jitter = 0
	return cfg
}

func newWorldWith(cfg Config, ents ...Entity) *World {
	w := NewWithConfig(cfg)
	w.SetEntities(ents)
	return w
}

// advance establishes a baseline and steps once by dt.
func advance(w *World, dt time.Duration) core.FrameReport {
	w.Step(epoch)
	return w.Step(epoch.Add(dt))
}

func ent(id int, k Kind, x, y float64) Entity {
	return Entity{ID: id, Kind: k, Pos: core.V(x, y), Vel: core.V(1, 0)}
}
