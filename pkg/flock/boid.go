// Package flock holds the boids model and the flocking engine.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object",
// which refers to a bird-like object. https://en.wikipedia.org/wiki/Boids
//
// Everything in this package is single-threaded and allocation-free per frame:
// a Flock is owned by one caller and mutated in place by the rule functions.
package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Boid is a single agent of the flock. It has no identity beyond its index.
// Fields are exported so renderers can read them.
type Boid struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
}

// Speed returns the magnitude of the boid velocity.
func (b Boid) Speed() float64 {
	return b.Vel.Len()
}

// Heading returns the velocity angle in radians, 0 for a boid at rest.
func (b Boid) Heading() float64 {
	return b.Vel.Angle()
}

// Flock is the fixed-length, ordered collection of boids of a run.
type Flock []Boid

// Settings controls the physics constants for the simulation.
type Settings struct {
	Width  float64 // World width, also the window width
	Height float64 // World height

	MinSpeed float64
	MaxSpeed float64

	ProximityRange float64 // Separation applies at or below this distance
	VisibleRange   float64 // Alignment and cohesion apply at or below this distance

	AvoidFactor    float64 // Separation strength
	MatchingFactor float64 // Alignment strength
	CohesionFactor float64 // Cohesion strength, keep it well below MatchingFactor

	BoundaryMargin float64 // Distance from an edge where containment kicks in
	TurnFactor     float64 // Velocity added per frame while inside the margin

	InitialVelocity float64 // Each starting velocity component is drawn in [0, InitialVelocity)
}

// NewFlock creates n boids with positions uniform inside the world and
// velocity components uniform in [0, s.InitialVelocity).
func NewFlock(n int, s Settings, rng *rand.Rand) Flock {
	f := make(Flock, n)
	for i := range f {
		f[i] = Boid{
			Pos: geometry.Vector2D{
				X: rng.Float64() * s.Width,
				Y: rng.Float64() * s.Height,
			},
			Vel: geometry.Vector2D{
				X: rng.Float64() * s.InitialVelocity,
				Y: rng.Float64() * s.InitialVelocity,
			},
		}
	}
	return f
}

// Clone returns an independent copy of the flock.
func (f Flock) Clone() Flock {
	c := make(Flock, len(f))
	copy(c, f)
	return c
}
