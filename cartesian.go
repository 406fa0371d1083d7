package orekit

import "fmt"

// CartesianOrbit holds an orbital state directly as position and velocity.
// It is the parameterization numerical propagators integrate.
type CartesianOrbit struct {
	pv    PVCoordinates
	date  AbsoluteDate
	frame *Frame
	μ     float64
}

// NewCartesianOrbit returns a Cartesian orbital state.
func NewCartesianOrbit(pv PVCoordinates, date AbsoluteDate, frame *Frame, μ float64) CartesianOrbit {
	return CartesianOrbit{pv, date, frame, μ}
}

// Date implements the OrbitalState interface.
func (o CartesianOrbit) Date() AbsoluteDate { return o.date }

// Frame implements the OrbitalState interface.
func (o CartesianOrbit) Frame() *Frame { return o.frame }

// Mu implements the OrbitalState interface.
func (o CartesianOrbit) Mu() float64 { return o.μ }

// PVCoordinates implements the OrbitalState interface.
func (o CartesianOrbit) PVCoordinates() PVCoordinates { return o.pv }

// ToKeplerian converts this state to classical orbital elements.
func (o CartesianOrbit) ToKeplerian() KeplerianOrbit {
	return NewKeplerianFromPV(o.pv, o.date, o.frame, o.μ)
}

// ToEquinoctial converts this state to equinoctial elements.
func (o CartesianOrbit) ToEquinoctial() EquinoctialOrbit {
	return NewEquinoctialFromPV(o.pv, o.date, o.frame, o.μ)
}

func (o CartesianOrbit) String() string {
	return fmt.Sprintf("R=%+v V=%+v", o.pv.Position, o.pv.Velocity)
}
