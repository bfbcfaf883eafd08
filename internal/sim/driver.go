// Package sim drives the simulation: each frame it advances the star
// system across the smoothed time span with the adaptive integrator,
// records trails, and tracks energy drift. It owns no clock; any host
// loop (interactive, headless, or test) calls Advance once per frame.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/tsouverin/simulation-numerique-25-26/internal/body"
	"github.com/tsouverin/simulation-numerique-25-26/internal/dynamo"
	"github.com/tsouverin/simulation-numerique-25-26/internal/physics"
)

// SpanStart is the strictly-positive start of each frame's integration
// span, guarding the degenerate zero-length evaluation at the previous
// step's endpoint.
const SpanStart = 1e-10

const driftHistoryCap = 600

// FrameError reports a failed frame advance. The frame's state update
// was not applied; the system still holds the previous valid state.
type FrameError struct {
	Frame int
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// Driver advances a System one frame at a time. It is the sole writer
// of body state; a step either fully succeeds or leaves the system
// untouched.
type Driver struct {
	sys   *body.System
	grav  *physics.Gravity
	integ dynamo.AdaptiveIntegrator

	t      float64
	frames int

	e0        float64
	maxDrift  float64
	driftHist []float64

	lastErr error
}

func NewDriver(sys *body.System, integ dynamo.AdaptiveIntegrator) *Driver {
	grav := physics.NewGravity(sys)
	return &Driver{
		sys:   sys,
		grav:  grav,
		integ: integ,
		e0:    grav.Energy(sys.State()),
	}
}

// Advance moves the system forward by one frame of dt seconds. On
// integration failure the frame is treated as not having occurred: the
// error is recorded and returned, and positions, velocities, and
// trails are left at the previous valid state.
func (d *Driver) Advance(dt float64) error {
	x := d.sys.State()

	newX, err := d.integ.Integrate(d.grav, x, SpanStart, dt)
	if err == nil && !newX.IsValid() {
		err = dynamo.ErrInvalidState
	}
	if err != nil {
		d.lastErr = &FrameError{Frame: d.frames, Err: err}
		d.frames++
		return d.lastErr
	}

	d.sys.SetState(newX)
	d.sys.RecordTrails()
	d.t += dt
	d.frames++
	d.lastErr = nil

	d.observeDrift(newX)
	return nil
}

func (d *Driver) observeDrift(x dynamo.State) {
	if d.e0 == 0 {
		return
	}
	drift := math.Abs(d.grav.Energy(x)-d.e0) / math.Abs(d.e0)
	d.maxDrift = math.Max(d.maxDrift, drift)
	d.driftHist = append(d.driftHist, drift)
	if len(d.driftHist) > driftHistoryCap {
		d.driftHist = d.driftHist[1:]
	}
}

func (d *Driver) System() *body.System     { return d.sys }
func (d *Driver) Gravity() *physics.Gravity { return d.grav }
func (d *Driver) Time() float64            { return d.t }
func (d *Driver) Frames() int              { return d.frames }
func (d *Driver) MaxDrift() float64        { return d.maxDrift }
func (d *Driver) LastErr() error           { return d.lastErr }

// DriftHistory returns the recent relative energy drift series, one
// sample per successful frame.
func (d *Driver) DriftHistory() []float64 { return d.driftHist }

// Result collects a headless run for storage and analysis.
type Result struct {
	Times  []float64
	States []dynamo.State
	Names  []string

	MaxDrift float64
	Errors   []error
}

// Run advances the system through a fixed number of frames at a fixed
// time step, collecting the state after each frame. Integration
// failures skip the frame and continue with the previous valid state;
// cancellation aborts between frames, never mid-integration.
func (d *Driver) Run(ctx context.Context, frames int, dt float64) (*Result, error) {
	res := &Result{
		Times:  make([]float64, 0, frames+1),
		States: make([]dynamo.State, 0, frames+1),
	}
	for _, p := range d.sys.Planets {
		res.Names = append(res.Names, p.Name)
	}

	res.Times = append(res.Times, d.t)
	res.States = append(res.States, d.sys.State())

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if err := d.Advance(dt); err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}

		res.Times = append(res.Times, d.t)
		res.States = append(res.States, d.sys.State())
	}

	res.MaxDrift = d.maxDrift
	return res, nil
}
