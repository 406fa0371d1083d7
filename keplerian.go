package orekit

import "math"

// KeplerianPropagator advances an elliptical orbit analytically with the
// unperturbed two-body mean motion. The orbital plane and shape stay
// fixed, only the anomaly evolves.
type KeplerianPropagator struct {
	initial SpacecraftState
	orbit   KeplerianOrbit
	status  propagationStatus
}

// NewKeplerianPropagator builds the propagator from an initial state. The
// orbit must be elliptical.
func NewKeplerianPropagator(initial SpacecraftState) (*KeplerianPropagator, error) {
	orbit := keplerianFromState(initial.Orbit)
	if orbit.E() >= 1 {
		return nil, newPropagationError(PreconditionOrbitalRegime, "eccentricity %f not elliptical", orbit.E())
	}
	return &KeplerianPropagator{initial, orbit, statusIdle}, nil
}

func keplerianFromState(o OrbitalState) KeplerianOrbit {
	if kep, ok := o.(KeplerianOrbit); ok {
		return kep
	}
	return NewKeplerianFromPV(o.PVCoordinates(), o.Date(), o.Frame(), o.Mu())
}

// Propagate returns the state at the target date. Propagating to the
// current date returns the held state unchanged.
func (p *KeplerianPropagator) Propagate(target AbsoluteDate) (SpacecraftState, error) {
	if target.Equals(p.orbit.Date()) {
		return p.initial, nil
	}
	Δt := target.Minus(p.orbit.Date())
	M0 := p.orbit.Anomaly(MeanAnomaly)
	M := math.Mod(M0+p.orbit.MeanMotion()*Δt, 2*math.Pi)
	orbit, err := NewKeplerianOrbit(p.orbit.A(), p.orbit.E(), p.orbit.I(),
		p.orbit.PerigeeArgument(), p.orbit.RAAN(), M, MeanAnomaly,
		target, p.orbit.Frame(), p.orbit.Mu())
	if err != nil {
		p.status = statusFailed
		return SpacecraftState{}, err
	}
	p.status = statusIdle
	p.orbit = orbit
	state := p.initial
	state.Orbit = orbit
	p.initial = state
	return state, nil
}
