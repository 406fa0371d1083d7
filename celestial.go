package orekit

import (
	"fmt"
	"math"
	"strings"

	"github.com/soniakeys/meeus/v3/solar"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
)

// CelestialObject defines a celestial object. All values are SI (m, m³/s²).
type CelestialObject struct {
	Name   string
	Radius float64
	a      float64 // mean heliocentric semi-major axis
	μ      float64
	SOI    float64 // With respect to the Sun
	J2     float64
	J3     float64
	J4     float64
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialObject) GM() float64 {
	return c.μ
}

// J returns the zonal J_n factor for the provided n.
func (c CelestialObject) J(n uint8) float64 {
	switch n {
	case 2:
		return c.J2
	case 3:
		return c.J3
	case 4:
		return c.J4
	default:
		return 0.0
	}
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ && c.SOI == b.SOI && c.J2 == b.J2
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined celestial object '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 6.957e8, -1, 1.32712440017987e20, -1, 0, 0, 0}

// Earth is home.
var Earth = CelestialObject{"Earth", 6.378137e6, 1.49598023e11, 3.986004415e14, 9.24645e8, 1082.6269e-6, -2.5324e-6, -1.6204e-6}

// Moon is its closest companion.
var Moon = CelestialObject{"Moon", 1.7374e6, 3.844e8, 4.902800066e12, 6.61e7, 202.7e-6, 0, 0}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3.39619e6, 2.279392825616e11, 4.282831e13, 5.76e8, 1964e-6, 36e-6, -18e-6}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 7.1492e7, 7.78298361e11, 1.266865361e17, 4.82e10, 0.01475, 0, -0.00058}

// CelestialBodyProvider returns the position and velocity of a celestial
// body at a date, expressed in a requested frame. Implementations backed
// by data files must report dates outside their coverage with a
// DateOutOfRangeError.
type CelestialBodyProvider interface {
	Body() CelestialObject
	PV(date AbsoluteDate, frame *Frame) (PVCoordinates, error)
}

// MeeusSun provides the geocentric Sun position from the meeus solar
// theory. It needs no data files. The inertial frame given at construction
// is the frame the raw coordinates are computed in (an Earth-centered
// equatorial inertial frame).
type MeeusSun struct {
	inertial *Frame
}

// NewMeeusSun returns a Sun provider anchored on the given inertial frame.
func NewMeeusSun(inertial *Frame) *MeeusSun {
	return &MeeusSun{inertial}
}

// Body implements the CelestialBodyProvider interface.
func (s *MeeusSun) Body() CelestialObject {
	return Sun
}

// position returns the geocentric Sun position at the given date in the
// anchor inertial frame.
func (s *MeeusSun) position(date AbsoluteDate) []float64 {
	jd := date.JD()
	ra, dec := solar.ApparentEquatorial(jd)
	// Low precision Sun-Earth distance from the solar mean anomaly.
	T := (jd - JulianDayJ2000) / 36525
	g := Deg2rad(math.Mod(357.52911+35999.05029*T, 360))
	d := AU * (1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g))
	return []float64{d * dec.Cos() * ra.Cos(), d * dec.Cos() * ra.Sin(), d * dec.Sin()}
}

// PV implements the CelestialBodyProvider interface. The velocity is
// derived by a symmetric finite difference, which is plenty for range-rate
// and third-body uses.
func (s *MeeusSun) PV(date AbsoluteDate, frame *Frame) (PVCoordinates, error) {
	const h = 30.0 // seconds
	p := s.position(date)
	pm := s.position(date.ShiftedBy(-h))
	pp := s.position(date.ShiftedBy(h))
	v := scale(1/(2*h), sub(pp, pm))
	t := s.inertial.TransformTo(frame, date)
	return t.TransformPV(PVCoordinates{p, v}), nil
}
