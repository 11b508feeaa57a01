package flock

import "github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"

// Each rule scans the whole flock for every boid (O(n²)) and updates
// velocities in index order, so boid k already sees the new velocities of
// boids 0..k-1. Distances are compared squared against squared thresholds;
// a neighbor exactly on the threshold counts.

// Separate pushes every boid away from the neighbors inside ProximityRange.
// The push is the raw sum of displacements scaled by AvoidFactor, so more and
// closer neighbors push harder.
func Separate(f Flock, s Settings) {
	rangeSq := s.ProximityRange * s.ProximityRange

	for b := range f {
		push := geometry.Zero
		for i := range f {
			if i == b {
				continue
			}
			d := f[b].Pos.Sub(f[i].Pos)
			if d.LenSqr() > rangeSq {
				continue
			}
			push = push.Add(d)
		}
		f[b].Vel = f[b].Vel.Add(push.Mul(s.AvoidFactor))
	}
}

// Align steers every boid velocity toward the mean velocity of the
// neighbors inside VisibleRange. Boids without neighbors are left alone.
func Align(f Flock, s Settings) {
	rangeSq := s.VisibleRange * s.VisibleRange

	for b := range f {
		sum := geometry.Zero
		n := 0
		for i := range f {
			if i == b || f[b].Pos.DistanceSquaredTo(f[i].Pos) > rangeSq {
				continue
			}
			sum = sum.Add(f[i].Vel)
			n++
		}
		if n == 0 {
			continue
		}

		avg := sum.Mul(1 / float64(n))
		f[b].Vel = f[b].Vel.Lerp(avg, s.MatchingFactor)
	}
}

// Cohere nudges every boid toward the mean position of the neighbors inside
// VisibleRange. Boids without neighbors are left alone.
func Cohere(f Flock, s Settings) {
	rangeSq := s.VisibleRange * s.VisibleRange

	for b := range f {
		sum := geometry.Zero
		n := 0
		for i := range f {
			if i == b || f[b].Pos.DistanceSquaredTo(f[i].Pos) > rangeSq {
				continue
			}
			sum = sum.Add(f[i].Pos)
			n++
		}
		if n == 0 {
			continue
		}

		center := sum.Mul(1 / float64(n))
		f[b].Vel = f[b].Vel.Add(center.Sub(f[b].Pos).Mul(s.CohesionFactor))
	}
}
