package orekit

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSemiAnalyticalTwoBody(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	orbit, err := NewKeplerianOrbit(7.2e6, 0.01, Deg2rad(51.6), Deg2rad(120), Deg2rad(45),
		Deg2rad(33), TrueAnomaly, date, gcrf, Earth.μ)
	if err != nil {
		t.Fatalf("could not build orbit: %s", err)
	}
	initial := NewSpacecraftState(orbit, 100)
	prop := NewSemiAnalyticalPropagator(initial, nil)
	ref, err := NewKeplerianPropagator(initial)
	if err != nil {
		t.Fatalf("could not build reference propagator: %s", err)
	}
	target := date.ShiftedBy(6 * 3600)
	got, err := prop.Propagate(target)
	if err != nil {
		t.Fatalf("mean element propagation failed: %s", err)
	}
	want, err := ref.Propagate(target)
	if err != nil {
		t.Fatalf("reference propagation failed: %s", err)
	}
	// without any mean element model this is exactly two-body motion
	if !vectorsEqualTol(got.PVCoordinates().Position, want.PVCoordinates().Position, 1) {
		t.Fatalf("mean motion drift:\n%+v\n%+v",
			got.PVCoordinates().Position, want.PVCoordinates().Position)
	}
}

func TestSemiAnalyticalZonalNodeDrift(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	orbit, err := NewKeplerianOrbit(7.2e6, 0.01, Deg2rad(51.6), Deg2rad(120), Deg2rad(45),
		Deg2rad(33), TrueAnomaly, date, gcrf, Earth.μ)
	if err != nil {
		t.Fatalf("could not build orbit: %s", err)
	}
	initial := NewSpacecraftState(orbit, 100)
	zonal := NewZonalGravity(Earth, 2)
	prop := NewSemiAnalyticalPropagator(initial, []MeanElementModel{zonal})
	if _, err := prop.Propagate(date.ShiftedBy(86400)); err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	mean := prop.MeanState()
	kep := keplerianFromState(mean.Orbit)
	ΔΩ := NormalizeAngle(kep.RAAN()-orbit.RAAN(), 0)
	// westward regression of a prograde orbit, about 4 degrees per day
	if ΔΩ > -0.01 || ΔΩ < -0.15 {
		t.Fatalf("node drift over one day = %f rad", ΔΩ)
	}
	if !floats.EqualWithinAbs(kep.A(), orbit.A(), 1) {
		t.Fatalf("secular model changed the semi-major axis: %f", kep.A())
	}
}

func TestSemiAnalyticalOsculatingOffset(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	orbit, err := NewKeplerianOrbit(7.2e6, 0.01, Deg2rad(51.6), Deg2rad(120), Deg2rad(45),
		Deg2rad(33), TrueAnomaly, date, gcrf, Earth.μ)
	if err != nil {
		t.Fatalf("could not build orbit: %s", err)
	}
	initial := NewSpacecraftState(orbit, 100)
	zonal := NewZonalGravity(Earth, 2)
	prop := NewSemiAnalyticalPropagator(initial, []MeanElementModel{zonal})
	if _, err := prop.Propagate(date.ShiftedBy(3600)); err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	mean := prop.MeanState()
	osc, err := prop.OsculatingState()
	if err != nil {
		t.Fatalf("osculating state failed: %s", err)
	}
	meanA := keplerianFromState(mean.Orbit).A()
	oscA := keplerianFromState(osc.Orbit).A()
	offset := math.Abs(oscA - meanA)
	// the J2 short-periodic term on a is of order J2 Re²/a, a few km
	if offset < 10 || offset > 50e3 {
		t.Fatalf("short-periodic offset on a = %f m", offset)
	}
}
