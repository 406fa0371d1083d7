package orekit

import "math"

// ThirdBodyAttraction is the differential pull of a distant body on the
// spacecraft relative to the pull on the central body.
type ThirdBodyAttraction struct {
	provider CelestialBodyProvider
}

// NewThirdBodyAttraction builds the perturbation for the given body
// ephemeris provider.
func NewThirdBodyAttraction(provider CelestialBodyProvider) ThirdBodyAttraction {
	if provider == nil {
		panic("third body attraction needs an ephemeris provider")
	}
	return ThirdBodyAttraction{provider}
}

// Acceleration returns μ3*(d/|d|³ − s/|s|³) where s is the body position
// with respect to the central body and d the body position with respect
// to the spacecraft, both in the state frame.
func (t ThirdBodyAttraction) Acceleration(s SpacecraftState) ([]float64, error) {
	bodyPV, err := t.provider.PV(s.Date(), s.Frame())
	if err != nil {
		return nil, err
	}
	scR := s.PVCoordinates().Position
	d := sub(bodyPV.Position, scR)
	dNorm3 := math.Pow(norm(d), 3)
	sNorm3 := math.Pow(norm(bodyPV.Position), 3)
	μ3 := t.provider.Body().μ
	acc := make([]float64, 3)
	for i := 0; i < 3; i++ {
		acc[i] = μ3 * (d[i]/dNorm3 - bodyPV.Position[i]/sNorm3)
	}
	return acc, nil
}

// SwitchingFunctions returns nil, the attraction is smooth.
func (t ThirdBodyAttraction) SwitchingFunctions() []SwitchingFunction { return nil }
