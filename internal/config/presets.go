package config

import "sort"

var sun = StarConfig{
	Name:        "Soleil",
	Mass:        1.989e30,
	Temperature: 5778,
	Radius:      6.96e8,
	Color:       "#ffdd44",
	Size:        6,
}

var Presets = map[string]*Config{
	"inner": {
		Star: sun,
		Planets: []BodyConfig{
			{Name: "Mercure", Mass: 3.301e23, Position: PosConfig{X: 5.79e10}, Color: "#aaaaaa", Size: 2},
			{Name: "Venus", Mass: 4.867e24, Position: PosConfig{X: 1.082e11}, Color: "#e8b25e", Size: 3},
			{Name: "Terre", Mass: 5.972e24, Position: PosConfig{X: 1.496e11}, Color: "#4d88ff", Size: 3},
			{Name: "Mars", Mass: 6.417e23, Position: PosConfig{X: 2.279e11}, Color: "#e06040", Size: 2},
		},
		Dt:         DefaultDt,
		Zoom:       DefaultZoom,
		Integrator: "rk45",
	},
	"solar": {
		Star: sun,
		Planets: []BodyConfig{
			{Name: "Mercure", Mass: 3.301e23, Position: PosConfig{X: 5.79e10}, Color: "#aaaaaa", Size: 2},
			{Name: "Venus", Mass: 4.867e24, Position: PosConfig{X: 1.082e11}, Color: "#e8b25e", Size: 3},
			{Name: "Terre", Mass: 5.972e24, Position: PosConfig{X: 1.496e11}, Color: "#4d88ff", Size: 3},
			{Name: "Mars", Mass: 6.417e23, Position: PosConfig{X: 2.279e11}, Color: "#e06040", Size: 2},
			{Name: "Jupiter", Mass: 1.898e27, Position: PosConfig{X: 7.785e11}, Color: "#d8a060", Size: 5},
			{Name: "Saturne", Mass: 5.683e26, Position: PosConfig{X: 1.434e12}, Color: "#e8d090", Size: 4},
			{Name: "Uranus", Mass: 8.681e25, Position: PosConfig{X: 2.871e12}, Color: "#90d0e0", Size: 4},
			{Name: "Neptune", Mass: 1.024e26, Position: PosConfig{X: 4.495e12}, Color: "#4060e0", Size: 4},
		},
		Dt:         DefaultDt * 5,
		Zoom:       DefaultZoom,
		Integrator: "rk45",
	},
	// Fictional tight system where the planet-planet terms visibly
	// perturb the orbits.
	"compact": {
		Star: StarConfig{Name: "Etoile", Mass: 8e29, Temperature: 4200, Radius: 4.9e8, Color: "#ff9955", Size: 5},
		Planets: []BodyConfig{
			{Name: "Alpha", Mass: 4e26, Position: PosConfig{X: 3.0e10}, Color: "#cc66ff", Size: 3},
			{Name: "Beta", Mass: 6e26, Position: PosConfig{X: 4.4e10}, Color: "#66ffcc", Size: 3},
			{Name: "Gamma", Mass: 2e26, Position: PosConfig{Y: 6.1e10}, Color: "#ffcc66", Size: 3},
		},
		Dt:         DefaultDt / 4,
		Zoom:       8.0,
		Integrator: "rk45",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Planets = append([]BodyConfig(nil), cfg.Planets...)
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
