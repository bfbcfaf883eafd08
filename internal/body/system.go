package body

import (
	"fmt"

	"github.com/tsouverin/simulation-numerique-25-26/internal/dynamo"
)

// System owns the star and planet records for a session. The planet
// count is fixed after construction; only positions and velocities
// change during a run.
//
// The star is anchored at the coordinate origin and is not part of the
// integrated state vector. The force model relies on this convention.
type System struct {
	Star    *Body
	Planets []*Body
}

// NewSystem validates the configuration and returns a System. Masses
// must be strictly positive and no planet may sit exactly at the
// star's position (its circular-orbit velocity would be undefined).
func NewSystem(star *Body, planets []*Body) (*System, error) {
	if star == nil {
		return nil, fmt.Errorf("system: star is required")
	}
	if star.Mass <= 0 {
		return nil, fmt.Errorf("system: star %q: mass must be positive, got %g", star.Name, star.Mass)
	}
	star.Position = Vec2{}
	star.Velocity = Vec2{}
	for _, p := range planets {
		if p.Mass <= 0 {
			return nil, fmt.Errorf("system: planet %q: mass must be positive, got %g", p.Name, p.Mass)
		}
		if p.Position.Norm() == 0 {
			return nil, fmt.Errorf("system: planet %q: placed at the star's position", p.Name)
		}
	}
	return &System{Star: star, Planets: planets}, nil
}

// State packs the planets into a flat state vector, four slots per
// planet: x, y, vx, vy, in planet-index order.
func (s *System) State() dynamo.State {
	x := make(dynamo.State, len(s.Planets)*4)
	for i, p := range s.Planets {
		x[i*4] = p.Position.X
		x[i*4+1] = p.Position.Y
		x[i*4+2] = p.Velocity.X
		x[i*4+3] = p.Velocity.Y
	}
	return x
}

// SetState writes a packed state vector back into the planet records.
func (s *System) SetState(x dynamo.State) error {
	if len(x) != len(s.Planets)*4 {
		return dynamo.ErrDimensionMismatch
	}
	for i, p := range s.Planets {
		p.Position.X = x[i*4]
		p.Position.Y = x[i*4+1]
		p.Velocity.X = x[i*4+2]
		p.Velocity.Y = x[i*4+3]
	}
	return nil
}

// Masses returns the planet masses in index order.
func (s *System) Masses() []float64 {
	m := make([]float64, len(s.Planets))
	for i, p := range s.Planets {
		m[i] = p.Mass
	}
	return m
}

// RecordTrails appends every planet's current position to its trail.
func (s *System) RecordTrails() {
	for _, p := range s.Planets {
		p.RecordTrail()
	}
}

// Bodies returns the star followed by the planets, the order used for
// tracking selection in the view layer.
func (s *System) Bodies() []*Body {
	out := make([]*Body, 0, len(s.Planets)+1)
	out = append(out, s.Star)
	out = append(out, s.Planets...)
	return out
}
