// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for fixed-step
// numerical integration of ordinary differential equations (ODEs):
//
//   - [State]: vector representing the dynamic part of a system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Stepper]: one-step numerical integrator interface
//   - [Configurable]: runtime access to named system parameters
//
// # Example
//
//	sys := physics.NewCoupledVanDerPol(0.85)
//	integ := sim.New(sys, integrators.RK4Factory, sim.Initial{Vx: 0.5, Vy: 0.5})
//	tr, err := integ.Advance(10000, 0.1)
//
// # Thread Safety
//
// Steppers keep private scratch buffers and are NOT safe for concurrent use.
// Integrators therefore take a stepper factory and build a fresh stepper for
// every run.
package dynamo
