package flock

// Edge identifies which containment branch fired for a boid.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeBottom
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return "none"
	}
}

// ClampSpeed keeps the boid speed inside [min, max] by rescaling its velocity.
// A boid at rest keeps a zero velocity: it has no direction to rescale.
func ClampSpeed(b *Boid, min, max float64) {
	speed := b.Vel.Len()
	if speed == 0 {
		return
	}

	if speed > max {
		b.Vel = b.Vel.WithLen(max)
	} else if speed < min {
		b.Vel = b.Vel.WithLen(min)
	}
}

// Contain steers a boid back toward the world when it is inside the boundary
// margin. Edges are tested left, right, bottom, top and only the first match
// is corrected in a given frame, so a boid in a corner turns on one axis only.
func Contain(b *Boid, s Settings) Edge {
	switch {
	case b.Pos.X < s.BoundaryMargin:
		b.Vel.X += s.TurnFactor
		return EdgeLeft
	case b.Pos.X > s.Width-s.BoundaryMargin:
		b.Vel.X -= s.TurnFactor
		return EdgeRight
	case b.Pos.Y > s.Height-s.BoundaryMargin:
		b.Vel.Y -= s.TurnFactor
		return EdgeBottom
	case b.Pos.Y < s.BoundaryMargin:
		b.Vel.Y += s.TurnFactor
		return EdgeTop
	}
	return EdgeNone
}

// Integrate is the last pass of a frame. For every boid, in order, it
// advances the position, clamps the speed, applies containment and then
// hands the boid to visit (which may be nil). Containment runs after the
// clamp, so a boid can leave this pass slightly outside the speed bounds;
// the next frame's clamp brings it back.
// It returns how many boids were steered by containment.
func Integrate(f Flock, s Settings, visit func(i int, b Boid)) int {
	contained := 0
	for i := range f {
		b := &f[i]
		b.Pos = b.Pos.Add(b.Vel)
		ClampSpeed(b, s.MinSpeed, s.MaxSpeed)
		if Contain(b, s) != EdgeNone {
			contained++
		}
		if visit != nil {
			visit(i, *b)
		}
	}
	return contained
}
