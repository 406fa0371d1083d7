package orekit

import (
	"testing"

	"github.com/gonum/floats"
)

func TestKeplerianPropagatorIdentity(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	orbit, err := NewKeplerianOrbit(7.2e6, 0.01, Deg2rad(51.6), Deg2rad(120), Deg2rad(45),
		Deg2rad(33), TrueAnomaly, date, gcrf, Earth.μ)
	if err != nil {
		t.Fatalf("could not build orbit: %s", err)
	}
	prop, err := NewKeplerianPropagator(NewSpacecraftState(orbit, 100))
	if err != nil {
		t.Fatalf("could not build propagator: %s", err)
	}
	state, err := prop.Propagate(date)
	if err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	pv0 := orbit.PVCoordinates()
	pv1 := state.PVCoordinates()
	if !vectorsEqualTol(pv0.Position, pv1.Position, 1e-9) {
		t.Fatal("same-date propagation changed the position")
	}
	if !vectorsEqualTol(pv0.Velocity, pv1.Velocity, 1e-12) {
		t.Fatal("same-date propagation changed the velocity")
	}
}

func TestKeplerianPropagatorFullPeriod(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	orbit, err := NewKeplerianOrbit(7.2e6, 0.05, Deg2rad(28.5), Deg2rad(10), Deg2rad(5),
		Deg2rad(90), TrueAnomaly, date, gcrf, Earth.μ)
	if err != nil {
		t.Fatalf("could not build orbit: %s", err)
	}
	prop, err := NewKeplerianPropagator(NewSpacecraftState(orbit, 100))
	if err != nil {
		t.Fatalf("could not build propagator: %s", err)
	}
	state, err := prop.Propagate(date.ShiftedBy(orbit.Period().Seconds()))
	if err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	pv0 := orbit.PVCoordinates()
	pv1 := state.PVCoordinates()
	if !vectorsEqualTol(pv0.Position, pv1.Position, 1) {
		t.Fatalf("one full period did not close the orbit:\n%+v\n%+v", pv0.Position, pv1.Position)
	}
}

func TestKeplerianPropagatorShapeInvariants(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	orbit, err := NewKeplerianOrbit(2.4e7, 0.72, Deg2rad(63.4), Deg2rad(270), Deg2rad(40),
		0, MeanAnomaly, date, gcrf, Earth.μ)
	if err != nil {
		t.Fatalf("could not build orbit: %s", err)
	}
	prop, err := NewKeplerianPropagator(NewSpacecraftState(orbit, 100))
	if err != nil {
		t.Fatalf("could not build propagator: %s", err)
	}
	state, err := prop.Propagate(date.ShiftedBy(5000))
	if err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	kep := keplerianFromState(state.Orbit)
	if !floats.EqualWithinAbs(kep.A(), orbit.A(), 1e-6) {
		t.Fatalf("semi-major axis drifted: %f", kep.A())
	}
	if !floats.EqualWithinAbs(kep.E(), orbit.E(), 1e-12) {
		t.Fatalf("eccentricity drifted: %f", kep.E())
	}
	if ok, errA := anglesEqual(kep.RAAN(), orbit.RAAN()); !ok {
		t.Fatalf("node drifted: %s", errA)
	}
}

func TestKeplerianPropagatorRejectsHyperbolic(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	pv := PVCoordinates{
		Position: []float64{7e6, 0, 0},
		Velocity: []float64{0, 12000, 0}, // above escape velocity
	}
	orbit := NewCartesianOrbit(pv, date, gcrf, Earth.μ)
	_, err := NewKeplerianPropagator(NewSpacecraftState(orbit, 100))
	if err == nil {
		t.Fatal("expected a rejection for a hyperbolic orbit")
	}
	propErr, ok := err.(PropagationError)
	if !ok {
		t.Fatalf("unexpected error type: %T", err)
	}
	if propErr.Precondition != PreconditionOrbitalRegime {
		t.Fatalf("unexpected precondition: %s", propErr.Precondition)
	}
}
