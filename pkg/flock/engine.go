package flock

import (
	"math"
	"time"
)

// FrameStats summarises the last frame computed by an Engine.
// It is a plain value so it can be handed to other goroutines safely.
type FrameStats struct {
	Frame     uint64
	Boids     int
	MeanSpeed float64
	MinSpeed  float64
	MaxSpeed  float64
	Contained int // boids steered back by containment this frame
	Elapsed   time.Duration
}

// Engine runs the per-frame pipeline over a flock it owns by reference.
type Engine struct {
	flock    Flock
	settings Settings
	frame    uint64
	stats    FrameStats
}

// NewEngine wraps f. The engine mutates f in place on every Step.
func NewEngine(f Flock, s Settings) *Engine {
	return &Engine{flock: f, settings: s}
}

// Flock returns the flock being simulated. Callers must not mutate it.
func (e *Engine) Flock() Flock { return e.flock }

// Settings returns the physics constants in use.
func (e *Engine) Settings() Settings { return e.settings }

// SetSettings replaces the physics constants. It must not be called while a
// Step is running; the new values apply from the next frame on.
func (e *Engine) SetSettings(s Settings) { e.settings = s }

// Frame returns how many frames have been computed.
func (e *Engine) Frame() uint64 { return e.frame }

// Stats returns the statistics of the last computed frame.
func (e *Engine) Stats() FrameStats { return e.stats }

// Step computes one frame: separation, alignment, cohesion and then the
// integrate/clamp/contain pass, calling visit for every boid at the end of
// that pass. It always runs to completion.
func (e *Engine) Step(visit func(i int, b Boid)) {
	start := time.Now()

	Separate(e.flock, e.settings)
	Align(e.flock, e.settings)
	Cohere(e.flock, e.settings)

	st := FrameStats{Boids: len(e.flock), MinSpeed: math.Inf(1)}
	total := 0.0
	st.Contained = Integrate(e.flock, e.settings, func(i int, b Boid) {
		speed := b.Speed()
		total += speed
		st.MinSpeed = math.Min(st.MinSpeed, speed)
		st.MaxSpeed = math.Max(st.MaxSpeed, speed)
		if visit != nil {
			visit(i, b)
		}
	})
	if st.Boids > 0 {
		st.MeanSpeed = total / float64(st.Boids)
	} else {
		st.MinSpeed = 0
	}

	e.frame++
	st.Frame = e.frame
	st.Elapsed = time.Since(start)
	e.stats = st
}
