// Package integrators provides the numerical ODE steppers used by the
// frame driver: an embedded Dormand-Prince RK45 with adaptive substep
// control, a classic RK4, and a kick-drift-kick leapfrog.
package integrators

import (
	"math"

	"github.com/tsouverin/simulation-numerique-25-26/internal/dynamo"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

// RK45 is an embedded Runge-Kutta 4(5) integrator. Integrate advances
// a state across a span with adaptive substeps sized against RelTol
// and AbsTol; Step performs one trial step at the given size and
// accepts it unconditionally.
type RK45 struct {
	RelTol float64
	AbsTol float64

	safety   float64
	minScale float64
	maxScale float64
	maxSteps int
}

func NewRK45() *RK45 {
	return &RK45{
		RelTol:   1e-6,
		AbsTol:   1e-8,
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
		maxSteps: 10000,
	}
}

func (r *RK45) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	xNew, _ := r.stepOnce(dyn, x, t, dt)
	return xNew
}

// Integrate advances x from t0 to t1. The returned state is freshly
// allocated; x is never mutated. It fails with [dynamo.ErrStepTooSmall]
// when the substep underflows the span resolution and with
// [dynamo.ErrStepBudget] when the substep budget runs out; in both
// cases the caller must treat the frame as not applied.
func (r *RK45) Integrate(dyn dynamo.System, x dynamo.State, t0, t1 float64) (dynamo.State, error) {
	span := t1 - t0
	hMin := span * 1e-12

	t := t0
	h := span
	cur := x.Clone()

	for steps := 0; t1-t > hMin; steps++ {
		if steps >= r.maxSteps {
			return nil, &dynamo.StepError{T: t, H: h, Wrapped: dynamo.ErrStepBudget}
		}
		if h < hMin {
			return nil, &dynamo.StepError{T: t, H: h, Wrapped: dynamo.ErrStepTooSmall}
		}
		if t+h > t1 {
			h = t1 - t
		}

		xNew, errRatio := r.stepOnce(dyn, cur, t, h)

		if errRatio > 1 {
			scale := math.Max(r.minScale, r.safety*math.Pow(errRatio, -0.25))
			h *= scale
			continue
		}

		cur = xNew
		t += h

		if errRatio > 0 {
			scale := math.Min(r.maxScale, r.safety*math.Pow(errRatio, -0.2))
			h *= scale
		} else {
			h *= r.maxScale
		}
	}

	return cur, nil
}

// stepOnce evaluates the seven Dormand-Prince stages for a single
// substep and returns the fifth-order solution with the error estimate
// normalized against the tolerances (<= 1 means acceptable).
func (r *RK45) stepOnce(dyn dynamo.System, x dynamo.State, t, dt float64) (dynamo.State, float64) {
	n := len(x)

	k1 := dyn.Derive(x, t)

	x2 := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		x2[i] = x[i] + dt*b21*k1[i]
	}
	k2 := dyn.Derive(x2, t+a2*dt)

	x3 := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		x3[i] = x[i] + dt*(b31*k1[i]+b32*k2[i])
	}
	k3 := dyn.Derive(x3, t+a3*dt)

	x4 := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		x4[i] = x[i] + dt*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := dyn.Derive(x4, t+a4*dt)

	x5 := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		x5[i] = x[i] + dt*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := dyn.Derive(x5, t+a5*dt)

	x6 := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		x6[i] = x[i] + dt*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := dyn.Derive(x6, t+dt)

	xNew := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		xNew[i] = x[i] + dt*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}

	k7 := dyn.Derive(xNew, t+dt)

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := dt * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		sc := r.AbsTol + r.RelTol*math.Max(math.Abs(x[i]), math.Abs(xNew[i]))
		errMax = math.Max(errMax, math.Abs(errEst)/sc)
	}

	return xNew, errMax
}
