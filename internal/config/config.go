// Package config loads and saves star-system configurations and
// carries the named presets. Configurations are plain YAML: one star,
// an ordered list of planets, and the initial view parameters.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
)

const (
	DefaultDt     = 86400.0 // 1 day
	DefaultZoom   = 1.0
	DefaultFrames = 1000
)

type Config struct {
	Star       StarConfig   `yaml:"star"`
	Planets    []BodyConfig `yaml:"planets"`
	Dt         float64      `yaml:"dt"`
	Zoom       float64      `yaml:"zoom"`
	Integrator string       `yaml:"integrator"`
	Theme      string       `yaml:"theme"`
}

type StarConfig struct {
	Name        string  `yaml:"name"`
	Mass        float64 `yaml:"mass"`
	Temperature float64 `yaml:"temperature"`
	Radius      float64 `yaml:"radius"`
	Color       string  `yaml:"color"`
	Size        int     `yaml:"size"`
}

type BodyConfig struct {
	Name     string     `yaml:"name"`
	Mass     float64    `yaml:"mass"`
	Position PosConfig  `yaml:"position"`
	Color    string     `yaml:"color"`
	Size     int        `yaml:"size"`
}

type PosConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Default returns the inner solar system preset.
func Default() *Config {
	return GetPreset("inner")
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildSystem constructs the body records from the configuration.
// Velocities are left zero; the caller assigns circular orbits at
// setup. Validation (positive masses, planets off the origin) happens
// in the system constructor.
func (c *Config) BuildSystem() (*body.System, error) {
	star := &body.Body{
		Name:        c.Star.Name,
		Mass:        c.Star.Mass,
		Temperature: c.Star.Temperature,
		Radius:      c.Star.Radius,
		Color:       c.Star.Color,
		Size:        c.Star.Size,
	}
	planets := make([]*body.Body, 0, len(c.Planets))
	for _, p := range c.Planets {
		planets = append(planets, &body.Body{
			Name:     p.Name,
			Mass:     p.Mass,
			Position: body.Vec2{X: p.Position.X, Y: p.Position.Y},
			Color:    p.Color,
			Size:     p.Size,
		})
	}
	return body.NewSystem(star, planets)
}
