package orekit

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestStationOverheadMeasurement(t *testing.T) {
	itrf := NewEarthFixedFrame(gcrf, "ITRF")
	shape := NewOneAxisEllipsoid(Earth.Radius, EarthFlattening, itrf)
	station := NewStation("test", shape, 40, -105, 1600, 10, σρ, σρDot)
	origin := shape.Transform(station.Topo.Point())
	date := NewAbsoluteDate(J2000Epoch, 0)
	// spacecraft 500 km straight above the station, receding radially
	pv := PVCoordinates{
		Position: add(origin, scale(500e3, station.Topo.Zenith())),
		Velocity: scale(1200, station.Topo.Zenith()),
	}
	state := NewSpacecraftState(NewCartesianOrbit(pv, date, itrf, Earth.μ), 100)
	m := station.PerformMeasurement(state)
	if !m.Visible {
		t.Fatal("overhead pass must be visible")
	}
	if !floats.EqualWithinAbs(m.TrueRange, 500e3, 1e-3) {
		t.Fatalf("true range = %f", m.TrueRange)
	}
	if !floats.EqualWithinAbs(m.TrueRangeRate, 1200, 1e-6) {
		t.Fatalf("true range rate = %f", m.TrueRangeRate)
	}
	if !floats.EqualWithinAbs(m.Elevation, math.Pi/2, 1e-6) {
		t.Fatalf("elevation = %f", m.Elevation)
	}
	// noise is Gaussian with a 5 m and 5 mm/s deviation
	if math.Abs(m.Range-m.TrueRange) > 50 {
		t.Fatalf("range noise too large: %f", m.Range-m.TrueRange)
	}
	if math.Abs(m.RangeRate-m.TrueRangeRate) > 0.05 {
		t.Fatalf("range rate noise too large: %f", m.RangeRate-m.TrueRangeRate)
	}
}

func TestStationBelowHorizonNotVisible(t *testing.T) {
	itrf := NewEarthFixedFrame(gcrf, "ITRF")
	shape := NewOneAxisEllipsoid(Earth.Radius, EarthFlattening, itrf)
	station := NewStation("test", shape, 40, -105, 1600, 10, σρ, σρDot)
	origin := shape.Transform(station.Topo.Point())
	date := NewAbsoluteDate(J2000Epoch, 0)
	// spacecraft on the horizon plane, below the minimum elevation
	pv := PVCoordinates{
		Position: add(origin, scale(1000e3, station.Topo.North())),
		Velocity: []float64{0, 0, 0},
	}
	state := NewSpacecraftState(NewCartesianOrbit(pv, date, itrf, Earth.μ), 100)
	if m := station.PerformMeasurement(state); m.Visible {
		t.Fatalf("horizon target must not be visible, elevation %f", Rad2deg(m.Elevation))
	}
}

func TestBuiltinStations(t *testing.T) {
	itrf := NewEarthFixedFrame(gcrf, "ITRF")
	shape := NewOneAxisEllipsoid(Earth.Radius, EarthFlattening, itrf)
	for _, name := range []string{"dss13", "dss34", "dss65"} {
		s := BuiltinStationFromName(name, shape)
		if s.Topo == nil {
			t.Fatalf("%s has no topocentric frame", name)
		}
	}
	assertPanic(t, func() {
		BuiltinStationFromName("unknown", shape)
	})
}
