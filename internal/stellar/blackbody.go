// Package stellar provides the caller-pluggable stellar capabilities
// consumed by the view layer: the habitable-zone annulus around the
// star and the influence radius around each planet. Default
// implementations are derived from blackbody physics and the Hill
// sphere.
package stellar

import "math"

// Physical constants, SI units.
const (
	PlanckH   = 6.62607015e-34 // J·s
	LightC    = 2.99792458e8   // m/s
	Boltzmann = 1.380649e-23   // J/K
	Stefan    = 5.670374419e-8 // W·m^-2·K^-4
	WienB     = 2.898e-3       // m·K
)

// Luminosity returns the total blackbody luminosity L = 4πR²σT⁴ of a
// star with effective temperature T (K) and radius R (m).
func Luminosity(T, R float64) float64 {
	return 4 * math.Pi * R * R * Stefan * math.Pow(T, 4)
}

// WienPeak returns the wavelength of maximum emission λ = b/T.
func WienPeak(T float64) float64 {
	return WienB / T
}

// PlanckRadiance returns the spectral radiance B_λ(T) at wavelength
// lam (m) for temperature T (K).
func PlanckRadiance(lam, T float64) float64 {
	num := 2 * PlanckH * LightC * LightC
	den := math.Pow(lam, 5) * (math.Exp(PlanckH*LightC/(lam*Boltzmann*T)) - 1)
	return num / den
}
