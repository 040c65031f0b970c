package rps

// integrate moves every entity by its velocity over dt seconds, then applies
// per-axis jitter.
func (w *World) integrate(dt float64) {
	scale := dt
	if w.cfg.Motion == MotionHeading {
		scale *= w.cfg.Params.Speed
	}
	j := w.cfg.Params.Jitter
	for i := range w.curr {
		e := &w.curr[i]
		e.Pos = e.Pos.Add(e.Vel.Scale(scale))
		e.Pos.X += w.jitter.Range(-j, j)
		e.Pos.Y += w.jitter.Range(-j, j)
	}
}

// collideWalls clamps entities back inside the arena and reflects the
// velocity component that pushed them out.
func (w *World) collideWalls() {
	for i := range w.curr {
		reflectAxis(&w.curr[i].Pos.X, &w.curr[i].Vel.X, w.half.X, w.halfDim)
		reflectAxis(&w.curr[i].Pos.Y, &w.curr[i].Vel.Y, w.half.Y, w.halfDim)
	}
}

func reflectAxis(pos, vel *float64, wall, halfDim float64) {
	switch {
	case *pos+halfDim > wall:
		*pos = wall - halfDim
		*vel = -*vel
	case *pos-halfDim < -wall:
		*pos = -wall + halfDim
		*vel = -*vel
	}
}
