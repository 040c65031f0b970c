package rps

import "rps-arena/internal/core"

// Entity is a single particle. Vel is a unit heading when the world uses
// heading motion and a free velocity otherwise.
type Entity struct {
	ID   int
	Kind Kind
	Pos  core.Vec2
	Vel  core.Vec2
}
