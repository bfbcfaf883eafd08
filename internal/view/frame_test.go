package view

import (
	"errors"
	"math"
	"testing"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
	"github.com/tsouverin/simulation-numerique-25-26/internal/stellar"
)

func testSystem(t *testing.T) *body.System {
	t.Helper()
	sys, err := body.NewSystem(
		&body.Body{Name: "sun", Mass: 1.989e30, Temperature: 5778, Radius: 6.96e8, Size: 6},
		[]*body.Body{{Name: "terre", Mass: 5.972e24, Position: body.Vec2{X: 1.496e11}, Size: 3, Influence: 1.5e9}},
	)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

func TestCompose_TransformConsistency(t *testing.T) {
	sys := testSystem(t)
	cam := NewCamera(1200, 900, 86400)

	p := sys.Planets[0]
	p.RecordTrail()

	f, err := Compose(cam, sys, nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	// The trail's last point was recorded at the body's position: the
	// shared transform must map both to identical pixels.
	sp := f.Planets[0]
	if len(sp.Trail) != 1 {
		t.Fatalf("expected 1 trail point, got %d", len(sp.Trail))
	}
	if sp.Trail[0] != sp.Pos {
		t.Errorf("trail and body transforms disagree: %v vs %v", sp.Trail[0], sp.Pos)
	}

	wantRing := p.Influence * Scale * cam.Zoom()
	if math.Abs(sp.InfluencePx-wantRing) > 1e-12 {
		t.Errorf("influence ring = %v px, want %v", sp.InfluencePx, wantRing)
	}
}

func TestCompose_HabitableZone(t *testing.T) {
	sys := testSystem(t)
	cam := NewCamera(1200, 900, 86400)

	f, err := Compose(cam, sys, stellar.HabitableZone)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if f.HZInnerPx <= 0 || f.HZOuterPx <= f.HZInnerPx {
		t.Errorf("expected 0 < inner < outer, got %v, %v", f.HZInnerPx, f.HZOuterPx)
	}
}

func TestCompose_DomainErrorPropagates(t *testing.T) {
	sys := testSystem(t)
	cam := NewCamera(1200, 900, 86400)

	boom := errors.New("bad zone function")
	hz := func(star *body.Body) (float64, float64, error) {
		return 0, 0, &stellar.DomainError{Func: "test", Body: star.Name, Err: boom}
	}

	_, err := Compose(cam, sys, hz)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the zone function error to propagate unmodified, got %v", err)
	}
	var de *stellar.DomainError
	if !errors.As(err, &de) {
		t.Error("expected a DomainError")
	}
}

func TestCompose_NoZoneFunc(t *testing.T) {
	sys := testSystem(t)
	cam := NewCamera(1200, 900, 86400)

	f, err := Compose(cam, sys, nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if f.HZInnerPx != 0 || f.HZOuterPx != 0 {
		t.Error("expected no habitable-zone rings without a zone function")
	}
}
