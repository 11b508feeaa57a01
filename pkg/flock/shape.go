package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Triangle returns the three vertices of the isosceles triangle used to draw
// b: the nose first, then the two tail corners. The triangle points along the
// velocity heading; a boid at rest points down the screen (+Y).
func Triangle(b Boid, length, halfWidth float64) [3]geometry.Vector2D {
	angle := b.Heading()
	if b.Vel.IsZero() {
		angle = math.Pi / 2
	}
	forward := geometry.NewVectorPolar(length, angle)
	side := geometry.NewVectorPolar(halfWidth, angle).Rotate(math.Pi / 2)

	tail := b.Pos.Sub(forward)
	return [3]geometry.Vector2D{
		b.Pos.Add(forward),
		tail.Add(side),
		tail.Sub(side),
	}
}
