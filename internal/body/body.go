// Package body holds the data model for the simulated star system: the
// per-body records (mass, kinematics, display attributes, trail
// history) and the System that owns them for the lifetime of a run.
package body

// Body is a mass-bearing object, planet or star. Position and velocity
// are mutated every integration step by the frame driver; the remaining
// fields are fixed at setup.
type Body struct {
	Name string
	Mass float64 // kg, strictly positive

	Position Vec2 // m
	Velocity Vec2 // m/s

	// Display attributes consumed by the rendering layer.
	Size  int    // apparent radius, pixels
	Color string // hex color, e.g. "#4d88ff"

	// Star-only physical attributes, used by the default habitable-zone
	// function. Zero when unknown.
	Temperature float64 // effective temperature, K
	Radius      float64 // physical radius, m

	// Influence is the cached influence-radius (m), computed once at
	// setup by a caller-supplied function. Zero means none.
	Influence float64

	trail *Trail
}

// Trail returns the body's position history buffer, allocating it on
// first use.
func (b *Body) Trail() *Trail {
	if b.trail == nil {
		b.trail = NewTrail(TrailCap)
	}
	return b.trail
}

// RecordTrail appends the current position to the trail.
func (b *Body) RecordTrail() {
	b.Trail().Push(b.Position)
}

// Barycenter returns the center of mass of two bodies.
func Barycenter(a, b *Body) Vec2 {
	m := a.Mass + b.Mass
	return Vec2{
		X: (a.Mass*a.Position.X + b.Mass*b.Position.X) / m,
		Y: (a.Mass*a.Position.Y + b.Mass*b.Position.Y) / m,
	}
}

// Distance returns the separation between two bodies in meters.
func Distance(a, b *Body) float64 {
	return a.Position.Sub(b.Position).Norm()
}
