package integrators

import "github.com/tsouverin/simulation-numerique-25-26/internal/dynamo"

// Leapfrog is a kick-drift-kick integrator for the planar N-body state
// layout: four slots per body, positions at 4i and 4i+1, velocities at
// 4i+2 and 4i+3. Symplectic, so long runs keep bounded energy error.
type Leapfrog struct {
	scratch dynamo.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	if len(l.scratch) != n {
		l.scratch = make(dynamo.State, n)
	}

	dx := dyn.Derive(x, t)
	halfDt := dt * 0.5

	// Half kick into scratch, then full drift.
	for i := 0; i < n; i += 4 {
		l.scratch[i+2] = x[i+2] + dx[i+2]*halfDt
		l.scratch[i+3] = x[i+3] + dx[i+3]*halfDt
		l.scratch[i] = x[i] + l.scratch[i+2]*dt
		l.scratch[i+1] = x[i+1] + l.scratch[i+3]*dt
	}

	dxNew := dyn.Derive(l.scratch, t+dt)

	result := make(dynamo.State, n)
	for i := 0; i < n; i += 4 {
		result[i] = l.scratch[i]
		result[i+1] = l.scratch[i+1]
		result[i+2] = l.scratch[i+2] + dxNew[i+2]*halfDt
		result[i+3] = l.scratch[i+3] + dxNew[i+3]*halfDt
	}

	return result
}

// Integrate advances across the span in fixed substeps.
func (l *Leapfrog) Integrate(dyn dynamo.System, x dynamo.State, t0, t1 float64) (dynamo.State, error) {
	const substeps = 32
	h := (t1 - t0) / substeps
	cur := x.Clone()
	t := t0
	for i := 0; i < substeps; i++ {
		cur = l.Step(dyn, cur, t, h)
		t += h
	}
	return cur, nil
}
