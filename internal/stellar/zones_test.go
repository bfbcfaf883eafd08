package stellar

import (
	"errors"
	"testing"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
)

const (
	sunTemp   = 5778.0  // K
	sunRadius = 6.96e8  // m
	au        = 1.496e11
)

func sunBody() *body.Body {
	return &body.Body{Name: "soleil", Mass: 1.989e30, Temperature: sunTemp, Radius: sunRadius}
}

func TestHabitableZone_Sun(t *testing.T) {
	inner, outer, err := HabitableZone(sunBody())
	if err != nil {
		t.Fatalf("HabitableZone: %v", err)
	}
	if inner <= 0 || outer <= inner {
		t.Fatalf("expected 0 < inner < outer, got %v, %v", inner, outer)
	}
	// Liquid-water annulus of a Sun-like blackbody: roughly 0.56 to
	// 1.04 AU, so Earth's orbit sits inside it.
	if inner < 8.0e10 || inner > 9.0e10 {
		t.Errorf("inner radius = %.3e m, want ~8.35e10", inner)
	}
	if outer < 1.5e11 || outer > 1.65e11 {
		t.Errorf("outer radius = %.3e m, want ~1.56e11", outer)
	}
	if !(inner < au && au < outer) {
		t.Errorf("1 AU should fall inside the zone [%.3e, %.3e]", inner, outer)
	}
}

func TestHabitableZone_MissingAttributes(t *testing.T) {
	star := sunBody()
	star.Temperature = 0

	_, _, err := HabitableZone(star)
	if !errors.Is(err, ErrMissingAttributes) {
		t.Fatalf("expected ErrMissingAttributes, got %v", err)
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatal("expected a DomainError")
	}
	if de.Func != "HabitableZone" || de.Body != "soleil" {
		t.Errorf("DomainError = %+v, want func HabitableZone on soleil", de)
	}
}

func TestHillRadius_Earth(t *testing.T) {
	star := sunBody()
	earth := &body.Body{Name: "terre", Mass: 5.972e24, Position: body.Vec2{X: au}}

	r, err := HillRadius(earth, star)
	if err != nil {
		t.Fatalf("HillRadius: %v", err)
	}
	// Earth's Hill sphere is close to 0.01 AU.
	if r < 1.4e9 || r > 1.6e9 {
		t.Errorf("Hill radius = %.3e m, want ~1.5e9", r)
	}
}

func TestHillRadius_AtOrigin(t *testing.T) {
	star := sunBody()
	p := &body.Body{Name: "p", Mass: 1e24}

	_, err := HillRadius(p, star)
	if !errors.Is(err, ErrMissingAttributes) {
		t.Fatalf("expected ErrMissingAttributes for a planet at the origin, got %v", err)
	}
}

func TestCacheInfluence(t *testing.T) {
	sys, err := body.NewSystem(sunBody(), []*body.Body{
		{Name: "terre", Mass: 5.972e24, Position: body.Vec2{X: au}},
		{Name: "mars", Mass: 6.39e23, Position: body.Vec2{X: 2.279e11}},
	})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	if err := CacheInfluence(sys, HillRadius); err != nil {
		t.Fatalf("CacheInfluence: %v", err)
	}
	for _, p := range sys.Planets {
		if p.Influence <= 0 {
			t.Errorf("%s: influence radius not cached", p.Name)
		}
	}

	// nil function leaves radii untouched.
	before := sys.Planets[0].Influence
	if err := CacheInfluence(sys, nil); err != nil {
		t.Fatalf("CacheInfluence(nil): %v", err)
	}
	if sys.Planets[0].Influence != before {
		t.Error("nil influence function should not modify cached radii")
	}
}

func TestCacheInfluence_ErrorStops(t *testing.T) {
	sys, err := body.NewSystem(sunBody(), []*body.Body{
		{Name: "terre", Mass: 5.972e24, Position: body.Vec2{X: au}},
	})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	boom := errors.New("no influence")
	fail := func(p, star *body.Body) (float64, error) { return 0, boom }
	if err := CacheInfluence(sys, fail); !errors.Is(err, boom) {
		t.Fatalf("expected the influence function error, got %v", err)
	}
}
