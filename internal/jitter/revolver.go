// Package jitter provides a cheap source of per-frame positional noise.
package jitter

import "math"

// Size is the number of pre-generated values held by a Revolver.
const Size = 1024

// Uniform is any source of uniform floats in [0, 1).
type Uniform interface {
	Float64() float64
}

// Revolver hands out a fixed set of random values in a loop. The buffer is
// filled once on construction and never re-randomized.
type Revolver struct {
	data [Size]float64
	idx  int
}

// New fills a Revolver from src.
func New(src Uniform) *Revolver {
	r := &Revolver{}
	for i := range r.data {
		r.data[i] = src.Float64()
	}
	return r
}

// Next returns the value under the cursor and advances it, wrapping to the
// start after the last slot.
func (r *Revolver) Next() float64 {
	v := r.data[r.idx]
	r.idx++
	if r.idx == len(r.data) {
		r.idx = 0
	}
	return v
}

// Range maps the next value onto [min, max].
//
// The mapping is |v|*(|min|+|max|)+min, which only spans the intended range
// when min <= 0 <= max.
func (r *Revolver) Range(min, max float64) float64 {
	return math.Abs(r.Next())*(math.Abs(min)+math.Abs(max)) + min
}

// Cursor returns the index of the next value to be handed out.
func (r *Revolver) Cursor() int { return r.idx }

// Values returns a copy of the buffer in slot order.
func (r *Revolver) Values() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data[:])
	return out
}
