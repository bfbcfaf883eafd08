// Package dynamo provides the core primitives for numerical simulation
// of ordinary differential equations (ODEs):
//
//   - [State]: flat vector of integrated quantities
//   - [System]: interface for ODE right-hand sides (dX/dt = f(X, t))
//   - [Integrator]: fixed-step integrator interface
//   - [AdaptiveIntegrator]: span integration with local error control
//
// # Example
//
//	grav := physics.NewGravity(sys)
//	integ := integrators.NewRK45()
//	next, err := integ.Integrate(grav, sys.State(), 0, dt)
//
// # Thread Safety
//
// State values are plain slices and are not synchronized. A System
// implementation must be safe for concurrent Derive calls on distinct
// state snapshots; adaptive integrators rely on this for their internal
// stage evaluations.
package dynamo
