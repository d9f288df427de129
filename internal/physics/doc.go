// Package physics provides dynamical system models for simulation.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution:
//
//   - [CoupledVanDerPol]: Van der Pol oscillator driving a second
//     oscillator through its damping term
//
// Models also implement [dynamo.Configurable] for runtime parameter
// adjustment:
//
//	sys := physics.NewCoupledVanDerPol(physics.DefaultMu)
//	if err := sys.SetParam("mu", 1.2); err != nil {
//	    return err
//	}
package physics
