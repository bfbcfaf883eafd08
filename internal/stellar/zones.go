package stellar

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
)

// HabitableZoneFunc maps a star to the inner and outer radii (m) of
// its habitable annulus. Supplied by the caller at setup; a failure is
// a DomainError and must reach the caller unmodified.
type HabitableZoneFunc func(star *body.Body) (inner, outer float64, err error)

// InfluenceRadiusFunc maps a planet (and its star) to an influence
// radius in meters, evaluated once at setup and cached on the planet.
type InfluenceRadiusFunc func(p, star *body.Body) (float64, error)

// ErrMissingAttributes marks a body lacking the physical attributes a
// zone function needs.
var ErrMissingAttributes = errors.New("stellar: missing physical attributes")

// DomainError reports a failure inside a caller-supplied stellar
// function, identifying the function and the body that caused it.
type DomainError struct {
	Func string
	Body string
	Err  error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("stellar: %s(%s): %v", e.Func, e.Body, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// Equilibrium temperature bounds of the default habitable annulus,
// liquid-water range for a fast-rotating blackbody.
const (
	innerEqTemp = 373.0 // K
	outerEqTemp = 273.0 // K
)

// HabitableZone is the default zone function. It derives the star's
// luminosity from its blackbody attributes and returns the radii where
// the equilibrium temperature crosses the liquid-water range:
// r(Teq) = sqrt(L/(16πσ)) / Teq².
func HabitableZone(star *body.Body) (float64, float64, error) {
	if star.Temperature <= 0 || star.Radius <= 0 {
		return 0, 0, &DomainError{Func: "HabitableZone", Body: star.Name, Err: ErrMissingAttributes}
	}
	L := Luminosity(star.Temperature, star.Radius)
	base := math.Sqrt(L / (16 * math.Pi * Stefan))
	inner := base / (innerEqTemp * innerEqTemp)
	outer := base / (outerEqTemp * outerEqTemp)
	return inner, outer, nil
}

// HillRadius is the default influence function: the Hill sphere
// r = a·(m/3M)^(1/3) at the planet's current orbital distance.
func HillRadius(p, star *body.Body) (float64, error) {
	a := p.Position.Norm()
	if a == 0 || p.Mass <= 0 || star.Mass <= 0 {
		return 0, &DomainError{Func: "HillRadius", Body: p.Name, Err: ErrMissingAttributes}
	}
	return a * math.Cbrt(p.Mass/(3*star.Mass)), nil
}

// CacheInfluence evaluates fn once per planet and stores the result on
// the planet record. A nil fn leaves all influence radii unset.
func CacheInfluence(sys *body.System, fn InfluenceRadiusFunc) error {
	if fn == nil {
		return nil
	}
	for _, p := range sys.Planets {
		r, err := fn(p, sys.Star)
		if err != nil {
			return err
		}
		p.Influence = r
	}
	return nil
}
