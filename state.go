package orekit

import (
	"github.com/gonum/matrix/mat64"
)

// Attitude is the rotation from the state frame to the spacecraft body
// frame at the state date.
type Attitude struct {
	Rotation *mat64.Dense
}

// IdentityAttitude returns a body frame aligned with the state frame.
func IdentityAttitude() Attitude {
	return Attitude{Identity33()}
}

// SpacecraftState extends an orbital state with the auxiliary attributes
// force models need: attitude and mass. States are value-like and
// immutable; a propagation step derives new ones.
type SpacecraftState struct {
	Orbit    OrbitalState
	Attitude Attitude
	Mass     float64 // kg
}

// NewSpacecraftState returns a state with an identity attitude.
func NewSpacecraftState(orbit OrbitalState, mass float64) SpacecraftState {
	return SpacecraftState{orbit, IdentityAttitude(), mass}
}

// Date returns the state date.
func (s SpacecraftState) Date() AbsoluteDate { return s.Orbit.Date() }

// Frame returns the frame the orbital state is expressed in.
func (s SpacecraftState) Frame() *Frame { return s.Orbit.Frame() }

// PVCoordinates returns the Cartesian coordinates of the state.
func (s SpacecraftState) PVCoordinates() PVCoordinates { return s.Orbit.PVCoordinates() }
