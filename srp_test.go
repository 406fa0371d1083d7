package orekit

import (
	"testing"

	"github.com/gonum/floats"
)

// fixedSun pins the Sun on the +x axis at one astronomical unit.
type fixedSun struct {
	frame *Frame
}

func (s fixedSun) Body() CelestialObject { return Sun }

func (s fixedSun) PV(date AbsoluteDate, frame *Frame) (PVCoordinates, error) {
	pv := PVCoordinates{Position: []float64{AU, 0, 0}, Velocity: []float64{0, 0, 0}}
	if frame == s.frame {
		return pv, nil
	}
	return s.frame.TransformTo(frame, date).TransformPV(pv), nil
}

func TestLightingRatio(t *testing.T) {
	srp := NewSolarRadiationPressure(fixedSun{gcrf}, Earth, 1.2, 5)
	sunlit := []float64{7e6, 0, 0}
	shadowed := []float64{-7e6, 0, 0}
	aside := []float64{0, 7e6, 0}
	for _, tc := range []struct {
		name string
		pos  []float64
		want float64
	}{
		{"between Sun and body", sunlit, 1},
		{"behind the body", shadowed, 0},
		{"terminator plane", aside, 1},
	} {
		satSun := sub([]float64{AU, 0, 0}, tc.pos)
		got := srp.lightingRatio(tc.pos, satSun)
		if !floats.EqualWithinAbs(got, tc.want, 1e-9) {
			t.Fatalf("%s: ratio = %f, expected %f", tc.name, got, tc.want)
		}
	}
}

func TestEclipseSwitchingFunctions(t *testing.T) {
	srp := NewSolarRadiationPressure(fixedSun{gcrf}, Earth, 1.2, 5)
	fns := srp.SwitchingFunctions()
	if len(fns) != 2 {
		t.Fatalf("expected umbra and penumbra markers, got %d", len(fns))
	}
	date := NewAbsoluteDate(J2000Epoch, 0)
	lit := NewSpacecraftState(NewCartesianOrbit(PVCoordinates{
		Position: []float64{7e6, 0, 0}, Velocity: []float64{0, 7500, 0}}, date, gcrf, Earth.μ), 100)
	dark := NewSpacecraftState(NewCartesianOrbit(PVCoordinates{
		Position: []float64{-7e6, 0, 0}, Velocity: []float64{0, -7500, 0}}, date, gcrf, Earth.μ), 100)
	for _, fn := range fns {
		gLit, err := fn.G(lit)
		if err != nil {
			t.Fatalf("%s evaluation failed: %s", fn.Name(), err)
		}
		if gLit <= 0 {
			t.Fatalf("%s must be positive in full light, got %f", fn.Name(), gLit)
		}
		gDark, err := fn.G(dark)
		if err != nil {
			t.Fatalf("%s evaluation failed: %s", fn.Name(), err)
		}
		if gDark >= 0 {
			t.Fatalf("%s must be negative in the shadow, got %f", fn.Name(), gDark)
		}
	}
}

func TestRadiationPressurePushesAwayFromSun(t *testing.T) {
	srp := NewSolarRadiationPressure(fixedSun{gcrf}, Earth, 1.2, 5)
	date := NewAbsoluteDate(J2000Epoch, 0)
	state := NewSpacecraftState(NewCartesianOrbit(PVCoordinates{
		Position: []float64{7e6, 0, 0}, Velocity: []float64{0, 7500, 0}}, date, gcrf, Earth.μ), 100)
	acc, err := srp.Acceleration(state)
	if err != nil {
		t.Fatalf("radiation pressure failed: %s", err)
	}
	satSun := sub([]float64{AU, 0, 0}, state.PVCoordinates().Position)
	if dot(acc, satSun) >= 0 {
		t.Fatalf("radiation pressure must push away from the Sun: %+v", acc)
	}
	// expected magnitude for a 5 m² cannonball of 100 kg near 1 AU
	want := SolarFluxPressure * 1.2 * 5 / 100
	if !floats.EqualWithinAbs(norm(acc), want, want*0.01) {
		t.Fatalf("magnitude = %g, expected about %g", norm(acc), want)
	}
}
