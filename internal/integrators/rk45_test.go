package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/tsouverin/simulation-numerique-25-26/internal/dynamo"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) StateDim() int { return 2 }

func (h *harmonicOscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (h *harmonicOscillator) Energy(x dynamo.State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestRK45_Step(t *testing.T) {
	integ := NewRK45()
	dyn := &harmonicOscillator{}
	x := dynamo.State{1.0, 0.0}

	dt := 0.01
	for i := 0; i < 1000; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	if !x.IsValid() {
		t.Error("RK45 produced invalid state")
	}
}

func TestRK45_Integrate_Accuracy(t *testing.T) {
	integ := NewRK45()
	dyn := &harmonicOscillator{}
	x0 := dynamo.State{1.0, 0.0}

	// One full oscillator period: the solution must return to x0.
	x, err := integ.Integrate(dyn, x0, 0, 2*math.Pi)
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	if math.Abs(x[0]-1.0) > 1e-4 || math.Abs(x[1]) > 1e-4 {
		t.Errorf("expected return to (1, 0) after one period, got (%v, %v)", x[0], x[1])
	}

	// Input state untouched.
	if x0[0] != 1.0 || x0[1] != 0.0 {
		t.Error("Integrate mutated its input state")
	}
}

func TestRK45_Integrate_EnergyConservation(t *testing.T) {
	integ := NewRK45()
	dyn := &harmonicOscillator{}
	x := dynamo.State{1.0, 0.0}

	e0 := dyn.Energy(x)

	var err error
	for i := 0; i < 100; i++ {
		x, err = integ.Integrate(dyn, x, 0, 1.0)
		if err != nil {
			t.Fatalf("Integrate failed at span %d: %v", i, err)
		}
	}

	drift := math.Abs(dyn.Energy(x)-e0) / e0
	if drift > 1e-4 {
		t.Errorf("energy drift too high: %e", drift)
	}
}

func TestRK45_Integrate_StepBudget(t *testing.T) {
	integ := NewRK45()
	integ.maxSteps = 3

	dyn := &harmonicOscillator{}
	_, err := integ.Integrate(dyn, dynamo.State{1.0, 0.0}, 0, 1000.0)

	if !errors.Is(err, dynamo.ErrStepBudget) {
		t.Errorf("expected ErrStepBudget, got %v", err)
	}
	var se *dynamo.StepError
	if !errors.As(err, &se) {
		t.Error("expected a StepError wrapper")
	}
}

func TestRK4_Step_Accuracy(t *testing.T) {
	integ := NewRK4()
	dyn := &harmonicOscillator{}
	x := dynamo.State{1.0, 0.0}

	dt := 0.01
	for i := 0; i < 10000; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	drift := math.Abs(dyn.Energy(x)-0.5) / 0.5
	if drift > 1e-6 {
		t.Errorf("RK4 energy drift too high: %e", drift)
	}
}

// planar oscillator in the stride-4 N-body layout, for the leapfrog:
// one body, unit angular frequency about the origin.
type springBody struct{}

func (s *springBody) StateDim() int { return 4 }

func (s *springBody) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[2], x[3], -x[0], -x[1]}
}

func TestLeapfrog_BoundedEnergy(t *testing.T) {
	integ := NewLeapfrog()
	dyn := &springBody{}
	x := dynamo.State{1.0, 0.0, 0.0, 1.0}

	energy := func(x dynamo.State) float64 {
		return 0.5 * (x[0]*x[0] + x[1]*x[1] + x[2]*x[2] + x[3]*x[3])
	}
	e0 := energy(x)

	dt := 0.05
	for i := 0; i < 20000; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	// Symplectic: energy oscillates but stays bounded over long runs.
	drift := math.Abs(energy(x)-e0) / e0
	if drift > 1e-2 {
		t.Errorf("leapfrog energy drifted unboundedly: %e", drift)
	}
}

func TestIntegrators_SatisfyAdaptiveInterface(t *testing.T) {
	var _ dynamo.AdaptiveIntegrator = NewRK45()
	var _ dynamo.AdaptiveIntegrator = NewRK4()
	var _ dynamo.AdaptiveIntegrator = NewLeapfrog()
}
