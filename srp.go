package orekit

import "math"

// SolarFluxPressure is the radiation pressure at one astronomical unit,
// in N/m².
const SolarFluxPressure = 4.56e-6

// SolarRadiationPressure pushes the spacecraft away from the Sun with the
// cannonball model, attenuated by the shadow of the occulting body.
type SolarRadiationPressure struct {
	sun       CelestialBodyProvider
	occulting CelestialObject
	cr        float64 // reflectivity coefficient
	area      float64 // cross section, m²
}

// NewSolarRadiationPressure builds the force with the given Sun ephemeris
// and occulting central body.
func NewSolarRadiationPressure(sun CelestialBodyProvider, occulting CelestialObject, cr, area float64) SolarRadiationPressure {
	if sun == nil {
		panic("radiation pressure needs a Sun ephemeris provider")
	}
	return SolarRadiationPressure{sun, occulting, cr, area}
}

// Acceleration returns the shadow-weighted radiation acceleration in the
// state frame.
func (p SolarRadiationPressure) Acceleration(s SpacecraftState) ([]float64, error) {
	sunPV, err := p.sun.PV(s.Date(), s.Frame())
	if err != nil {
		return nil, err
	}
	scR := s.PVCoordinates().Position
	satSun := sub(sunPV.Position, scR)
	ratio := p.lightingRatio(scR, satSun)
	d := norm(satSun)
	mag := ratio * SolarFluxPressure * math.Pow(AU/d, 2) * p.cr * p.area / s.Mass
	return scale(-mag, unit(satSun)), nil
}

// lightingRatio returns the fraction of the solar disk visible from the
// spacecraft: 1 in full light, 0 in umbra, and a linear ramp across the
// penumbra based on the apparent half-angles of the Sun and of the
// occulting body.
func (p SolarRadiationPressure) lightingRatio(scR, satSun []float64) float64 {
	αSun := math.Asin(Sun.Radius / norm(satSun))
	αBody := math.Asin(p.occulting.Radius / norm(scR))
	// angular separation between the Sun and the body center, seen
	// from the spacecraft
	θ := math.Acos(dot(unit(satSun), unit(scale(-1, scR))))
	switch {
	case θ >= αSun+αBody:
		return 1
	case θ <= αBody-αSun:
		return 0
	default:
		return (θ - (αBody - αSun)) / (2 * αSun)
	}
}

// SwitchingFunctions returns the umbra and penumbra boundary markers, so
// a propagator can stop its steps exactly on shadow crossings.
func (p SolarRadiationPressure) SwitchingFunctions() []SwitchingFunction {
	return []SwitchingFunction{
		eclipseBoundary{p, true},
		eclipseBoundary{p, false},
	}
}

// eclipseBoundary is positive outside the named shadow cone and negative
// inside it.
type eclipseBoundary struct {
	srp   SolarRadiationPressure
	umbra bool
}

func (b eclipseBoundary) Name() string {
	if b.umbra {
		return "umbra"
	}
	return "penumbra"
}

func (b eclipseBoundary) G(s SpacecraftState) (float64, error) {
	sunPV, err := b.srp.sun.PV(s.Date(), s.Frame())
	if err != nil {
		return 0, err
	}
	scR := s.PVCoordinates().Position
	satSun := sub(sunPV.Position, scR)
	αSun := math.Asin(Sun.Radius / norm(satSun))
	αBody := math.Asin(b.srp.occulting.Radius / norm(scR))
	θ := math.Acos(dot(unit(satSun), unit(scale(-1, scR))))
	if b.umbra {
		return θ - (αBody - αSun), nil
	}
	return θ - (αBody + αSun), nil
}
