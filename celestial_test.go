package orekit

import (
	"testing"

	"github.com/gonum/floats"
)

func TestCelestialObjectFromString(t *testing.T) {
	for _, name := range []string{"Sun", "Earth", "Moon", "Mars", "Jupiter"} {
		body, err := CelestialObjectFromString(name)
		if err != nil {
			t.Fatalf("unknown body %s: %s", name, err)
		}
		if body.Name != name {
			t.Fatalf("got %s for %s", body.Name, name)
		}
		if body.μ <= 0 {
			t.Fatalf("%s has no gravitational parameter", name)
		}
	}
	if _, err := CelestialObjectFromString("Krypton"); err == nil {
		t.Fatal("expected an error for an unknown body")
	}
}

func TestEarthZonalCoefficients(t *testing.T) {
	if !floats.EqualWithinAbs(Earth.J(2), 1082.6269e-6, 1e-9) {
		t.Fatalf("J2 = %g", Earth.J(2))
	}
	if Earth.J(3) >= 0 {
		t.Fatalf("J3 must be negative: %g", Earth.J(3))
	}
	if Earth.J(7) != 0 {
		t.Fatalf("unsupported degree must read zero, got %g", Earth.J(7))
	}
}

func TestMeeusSunDistance(t *testing.T) {
	sun := NewMeeusSun(gcrf)
	// spread over a year, the Earth-Sun distance stays within the
	// orbital bounds
	for day := 0; day < 366; day += 30 {
		date := NewAbsoluteDate(J2000Epoch, float64(day)*86400)
		pv, err := sun.PV(date, gcrf)
		if err != nil {
			t.Fatalf("Sun ephemeris failed: %s", err)
		}
		d := norm(pv.Position)
		if d < 0.98*AU || d > 1.02*AU {
			t.Fatalf("day %d: Sun distance = %f AU", day, d/AU)
		}
	}
}

func TestMeeusSunApparentVelocity(t *testing.T) {
	sun := NewMeeusSun(gcrf)
	date := NewAbsoluteDate(J2000Epoch, 86400*100)
	pv, err := sun.PV(date, gcrf)
	if err != nil {
		t.Fatalf("Sun ephemeris failed: %s", err)
	}
	v := norm(pv.Velocity)
	// the apparent solar velocity is the Earth orbital velocity
	if v < 28e3 || v > 31e3 {
		t.Fatalf("apparent Sun velocity = %f m/s", v)
	}
}
