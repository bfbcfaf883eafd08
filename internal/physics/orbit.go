package physics

import (
	"fmt"
	"math"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
)

// OrbitalVelocity returns the velocity giving a circular counter-
// clockwise orbit for a planet at its current position around the
// star: v = sqrt(G(M+m)/r0) directed along (-y0, x0)/r0.
func OrbitalVelocity(p, star *body.Body) (body.Vec2, error) {
	r0 := p.Position.Norm()
	if r0 == 0 {
		return body.Vec2{}, fmt.Errorf("physics: planet %q at the star's position, orbital velocity undefined", p.Name)
	}
	v := math.Sqrt(G * (star.Mass + p.Mass) / r0)
	return body.Vec2{
		X: -p.Position.Y / r0 * v,
		Y: p.Position.X / r0 * v,
	}, nil
}

// OrbitalPeriod returns the two-body period 2π·sqrt(r0³/(G(M+m))) for
// a planet on a circular orbit at its current distance.
func OrbitalPeriod(p, star *body.Body) float64 {
	r0 := p.Position.Norm()
	return 2 * math.Pi * math.Sqrt(r0*r0*r0/(G*(star.Mass+p.Mass)))
}

// InitOrbits assigns every planet its circular-orbit velocity. Called
// once at setup, before the first frame.
func InitOrbits(sys *body.System) error {
	for _, p := range sys.Planets {
		v, err := OrbitalVelocity(p, sys.Star)
		if err != nil {
			return err
		}
		p.Velocity = v
	}
	return nil
}
