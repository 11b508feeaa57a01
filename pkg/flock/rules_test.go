package flock

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

const tolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// testSettings mirrors the default tuning of the simulation.
func testSettings() Settings {
	return Settings{
		Width:           1280,
		Height:          720,
		MinSpeed:        2,
		MaxSpeed:        4.5,
		ProximityRange:  20,
		VisibleRange:    70,
		AvoidFactor:     0.05,
		MatchingFactor:  0.2,
		CohesionFactor:  0.001,
		BoundaryMargin:  200,
		TurnFactor:      0.1,
		InitialVelocity: 3,
	}
}

func boid(x, y, vx, vy float64) Boid {
	return Boid{Pos: geometry.Vector2D{X: x, Y: y}, Vel: geometry.Vector2D{X: vx, Y: vy}}
}

func TestSeparate(t *testing.T) {
	s := testSettings()

	tests := []struct {
		name  string
		flock Flock
		want  []geometry.Vector2D
	}{
		{
			name:  "beyond proximity range",
			flock: Flock{boid(100, 100, 1, 0), boid(100, 121, 0, 1)},
			want:  []geometry.Vector2D{{X: 1, Y: 0}, {X: 0, Y: 1}},
		},
		{
			name:  "inside proximity range",
			flock: Flock{boid(100, 100, 0, 0), boid(110, 100, 0, 0)},
			want:  []geometry.Vector2D{{X: -0.5, Y: 0}, {X: 0.5, Y: 0}},
		},
		{
			name:  "exactly on proximity range",
			flock: Flock{boid(100, 100, 0, 0), boid(100, 120, 0, 0)},
			want:  []geometry.Vector2D{{X: 0, Y: -1}, {X: 0, Y: 1}},
		},
		{
			// Displacements add up: two neighbors on the same side push twice as hard.
			name:  "no normalization by neighbor count",
			flock: Flock{boid(100, 100, 0, 0), boid(110, 100, 0, 0), boid(110, 100, 0, 0)},
			want:  []geometry.Vector2D{{X: -1, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Separate(tt.flock, s)
			for i, want := range tt.want {
				if got := tt.flock[i].Vel; !got.Eq(want) {
					t.Errorf("boid %d velocity = %v; want %v", i, got, want)
				}
			}
		})
	}
}

func TestAlign_OutOfRange(t *testing.T) {
	s := testSettings()
	f := Flock{boid(100, 100, 0, 0), boid(171, 100, 2, 0)}

	Align(f, s)

	if !f[0].Vel.IsZero() {
		t.Errorf("Expected boid 0 unchanged, got %v", f[0].Vel)
	}
	if !f[1].Vel.Eq(geometry.Vector2D{X: 2, Y: 0}) {
		t.Errorf("Expected boid 1 unchanged, got %v", f[1].Vel)
	}
}

func TestAlign_MovesTowardAverage(t *testing.T) {
	// Setup: boid 0 at rest, boid 1 moving at (2,0), 30 apart.
	// Boid 0 is updated first and moves 20% of the way to (2,0).
	// Boid 1 then sees the already updated velocity of boid 0.
	s := testSettings()
	f := Flock{boid(100, 100, 0, 0), boid(130, 100, 2, 0)}

	Align(f, s)

	if !floatEquals(f[0].Vel.X, 0.4) || f[0].Vel.Y != 0 {
		t.Errorf("boid 0 velocity = %v; want (0.4, 0)", f[0].Vel)
	}
	if !floatEquals(f[1].Vel.X, 1.68) || f[1].Vel.Y != 0 {
		t.Errorf("boid 1 velocity = %v; want (1.68, 0)", f[1].Vel)
	}

	// Strictly toward the neighbor average
	before := geometry.Vector2D{X: 0, Y: 0}.DistanceTo(geometry.Vector2D{X: 2, Y: 0})
	after := f[0].Vel.DistanceTo(geometry.Vector2D{X: 2, Y: 0})
	if !(after < before) {
		t.Errorf("Expected velocity closer to average: before %f, after %f", before, after)
	}
}

func TestCohere(t *testing.T) {
	s := testSettings()

	t.Run("out of range", func(t *testing.T) {
		f := Flock{boid(100, 100, 0, 0), boid(100, 171, 0, 0)}
		Cohere(f, s)
		if !f[0].Vel.IsZero() || !f[1].Vel.IsZero() {
			t.Errorf("Expected no pull, got %v and %v", f[0].Vel, f[1].Vel)
		}
	})

	t.Run("pulls toward center", func(t *testing.T) {
		f := Flock{boid(100, 100, 0, 0), boid(150, 100, 0, 0)}
		Cohere(f, s)
		if !floatEquals(f[0].Vel.X, 0.05) || f[0].Vel.Y != 0 {
			t.Errorf("boid 0 velocity = %v; want (0.05, 0)", f[0].Vel)
		}
		if !floatEquals(f[1].Vel.X, -0.05) || f[1].Vel.Y != 0 {
			t.Errorf("boid 1 velocity = %v; want (-0.05, 0)", f[1].Vel)
		}
	})

	t.Run("uses the mean position", func(t *testing.T) {
		// Neighbors at +40 and -20 on X: center is 10 to the right.
		f := Flock{boid(100, 100, 0, 0), boid(140, 100, 0, 0), boid(80, 100, 0, 0)}
		Cohere(f, s)
		if !floatEquals(f[0].Vel.X, 0.01) {
			t.Errorf("boid 0 velocity = %v; want (0.01, 0)", f[0].Vel)
		}
	})
}

func TestCohesionWeakerThanAlignment(t *testing.T) {
	// Same displacement of 10 units: in velocity for alignment, in position for cohesion.
	s := testSettings()

	aligned := Flock{boid(100, 100, 0, 0), boid(130, 100, 10, 0)}
	Align(aligned, s)
	alignPull := aligned[0].Vel.Len()

	cohered := Flock{boid(100, 100, 0, 0), boid(110, 100, 0, 0)}
	Cohere(cohered, s)
	cohesionPull := cohered[0].Vel.Len()

	if cohesionPull > alignPull {
		t.Errorf("Expected cohesion pull %f <= alignment pull %f", cohesionPull, alignPull)
	}
	if !floatEquals(alignPull, 2) || !floatEquals(cohesionPull, 0.01) {
		t.Errorf("Unexpected pulls: alignment %f (want 2), cohesion %f (want 0.01)", alignPull, cohesionPull)
	}
}

func TestRules_SingleBoid(t *testing.T) {
	s := testSettings()
	f := Flock{boid(640, 360, 3, -1)}

	Separate(f, s)
	Align(f, s)
	Cohere(f, s)

	if !f[0].Vel.Eq(geometry.Vector2D{X: 3, Y: -1}) {
		t.Errorf("Expected lone boid velocity unchanged, got %v", f[0].Vel)
	}
}

func TestRules_IdenticalPositions(t *testing.T) {
	// Distance 0 is inside every range: separation finds a zero displacement
	// and alignment/cohesion pull toward an identical state.
	s := testSettings()
	f := Flock{boid(640, 360, 2, 1), boid(640, 360, 2, 1)}

	Separate(f, s)
	for i := range f {
		if !f[i].Vel.Eq(geometry.Vector2D{X: 2, Y: 1}) {
			t.Errorf("separation moved boid %d: %v", i, f[i].Vel)
		}
	}

	Align(f, s)
	Cohere(f, s)
	for i := range f {
		if !f[i].Vel.Eq(geometry.Vector2D{X: 2, Y: 1}) {
			t.Errorf("alignment/cohesion moved boid %d: %v", i, f[i].Vel)
		}
	}
}
