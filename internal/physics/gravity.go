// Package physics implements the gravitational dynamics of a star
// system: the N-body force model integrated each frame, the
// circular-orbit initializer, and conserved-quantity diagnostics.
package physics

import (
	"math"
	"sync"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
	"github.com/tsouverin/simulation-numerique-25-26/internal/dynamo"
)

// G is the gravitational constant in SI units (m^3 kg^-1 s^-2).
const G = 6.674e-11

// parallelThreshold is the planet count above which Derive fans the
// per-body acceleration sums out to goroutines.
const parallelThreshold = 64

// Gravity is the N-body force model. The star sits at the origin and
// contributes the primary attraction term for every planet; each
// planet additionally attracts every other planet pairwise.
//
// Derive is a pure function of the input state and is safe for
// concurrent calls on distinct snapshots, as required by the adaptive
// integrator's stage evaluations.
type Gravity struct {
	StarMass float64
	Masses   []float64
	Parallel bool
}

// NewGravity builds the force model for a configured system.
func NewGravity(sys *body.System) *Gravity {
	return &Gravity{
		StarMass: sys.Star.Mass,
		Masses:   sys.Masses(),
		Parallel: true,
	}
}

func (g *Gravity) StateDim() int { return len(g.Masses) * 4 }

// Derive returns the state derivative: velocity slots copied through,
// acceleration slots filled from the star term and the pairwise terms.
func (g *Gravity) Derive(x dynamo.State, t float64) dynamo.State {
	n := len(g.Masses)
	dx := make(dynamo.State, len(x))

	accel := func(i int) {
		xi, yi := x[i*4], x[i*4+1]

		r := math.Hypot(xi, yi)
		ax := -G * g.StarMass * xi / (r * r * r)
		ay := -G * g.StarMass * yi / (r * r * r)

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			rx := xi - x[j*4]
			ry := yi - x[j*4+1]
			rij := math.Hypot(rx, ry)
			if rij == 0 {
				// Exact coincidence: skip the pair instead of dividing
				// by zero and poisoning the state with NaN.
				continue
			}
			f := -G * g.Masses[j] / (rij * rij * rij)
			ax += f * rx
			ay += f * ry
		}

		dx[i*4] = x[i*4+2]
		dx[i*4+1] = x[i*4+3]
		dx[i*4+2] = ax
		dx[i*4+3] = ay
	}

	if g.Parallel && n >= parallelThreshold {
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				accel(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < n; i++ {
			accel(i)
		}
	}

	return dx
}

// Energy returns the total mechanical energy of a state: kinetic plus
// potential against the star and every planet pair. Coincident pairs
// contribute nothing, mirroring Derive.
func (g *Gravity) Energy(x dynamo.State) float64 {
	n := len(g.Masses)
	ke := 0.0
	pe := 0.0

	for i := 0; i < n; i++ {
		vx, vy := x[i*4+2], x[i*4+3]
		ke += 0.5 * g.Masses[i] * (vx*vx + vy*vy)

		r := math.Hypot(x[i*4], x[i*4+1])
		if r > 0 {
			pe -= G * g.StarMass * g.Masses[i] / r
		}

		for j := i + 1; j < n; j++ {
			rx := x[j*4] - x[i*4]
			ry := x[j*4+1] - x[i*4+1]
			rij := math.Hypot(rx, ry)
			if rij > 0 {
				pe -= G * g.Masses[i] * g.Masses[j] / rij
			}
		}
	}

	return ke + pe
}

// AngularMomentum returns the total angular momentum of the planets
// about the origin.
func (g *Gravity) AngularMomentum(x dynamo.State) float64 {
	L := 0.0
	for i := range g.Masses {
		xi, yi := x[i*4], x[i*4+1]
		vx, vy := x[i*4+2], x[i*4+3]
		L += g.Masses[i] * (xi*vy - yi*vx)
	}
	return L
}
