package body

import (
	"math"
	"testing"
)

func testStar() *Body {
	return &Body{Name: "star", Mass: 1.989e30}
}

func TestNewSystem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		star    *Body
		planets []*Body
		wantErr bool
	}{
		{"valid", testStar(), []*Body{{Name: "p", Mass: 1e24, Position: Vec2{X: 1e11}}}, false},
		{"no planets", testStar(), nil, false},
		{"zero star mass", &Body{Name: "star"}, nil, true},
		{"negative planet mass", testStar(), []*Body{{Name: "p", Mass: -1, Position: Vec2{X: 1e11}}}, true},
		{"planet at origin", testStar(), []*Body{{Name: "p", Mass: 1e24}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSystem(tt.star, tt.planets)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSystem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSystem_StateRoundTrip(t *testing.T) {
	p1 := &Body{Name: "a", Mass: 1e24, Position: Vec2{X: 1e11, Y: 2e10}, Velocity: Vec2{X: -5, Y: 30000}}
	p2 := &Body{Name: "b", Mass: 2e24, Position: Vec2{X: -3e11, Y: 4e10}, Velocity: Vec2{X: 100, Y: -200}}

	sys, err := NewSystem(testStar(), []*Body{p1, p2})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	x := sys.State()
	if len(x) != 8 {
		t.Fatalf("expected state length 8, got %d", len(x))
	}
	if x[0] != 1e11 || x[3] != 30000 || x[4] != -3e11 {
		t.Errorf("unexpected packing: %v", x)
	}

	x[0] = 5e11
	x[7] = -999
	if err := sys.SetState(x); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if p1.Position.X != 5e11 || p2.Velocity.Y != -999 {
		t.Errorf("SetState did not write back into bodies")
	}

	if err := sys.SetState(x[:4]); err == nil {
		t.Error("expected error for mismatched state length")
	}
}

func TestBarycenter(t *testing.T) {
	a := &Body{Mass: 2, Position: Vec2{X: 0}}
	b := &Body{Mass: 1, Position: Vec2{X: 3}}

	c := Barycenter(a, b)
	if math.Abs(c.X-1) > 1e-12 || c.Y != 0 {
		t.Errorf("expected barycenter (1, 0), got %v", c)
	}
}

func TestDistance(t *testing.T) {
	a := &Body{Position: Vec2{X: 3}}
	b := &Body{Position: Vec2{Y: 4}}
	if d := Distance(a, b); math.Abs(d-5) > 1e-12 {
		t.Errorf("expected distance 5, got %v", d)
	}
}

func TestSystem_RecordTrails(t *testing.T) {
	p := &Body{Name: "p", Mass: 1e24, Position: Vec2{X: 1e11}}
	sys, err := NewSystem(testStar(), []*Body{p})
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	sys.RecordTrails()
	p.Position.X = 2e11
	sys.RecordTrails()

	pts := p.Trail().Points()
	if len(pts) != 2 {
		t.Fatalf("expected 2 trail points, got %d", len(pts))
	}
	if pts[0].X != 1e11 || pts[1].X != 2e11 {
		t.Errorf("trail not chronological: %v", pts)
	}
}
