package orekit

import (
	"fmt"
	"math"
)

// GeodeticPoint is a surface-relative position: geodetic longitude and
// latitude in radians, altitude in meters above the ellipsoid.
type GeodeticPoint struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

func (p GeodeticPoint) String() string {
	return fmt.Sprintf("lon=%.4f° lat=%.4f° alt=%.1fm", Rad2deg(p.Longitude), Rad2deg(p.Latitude), p.Altitude)
}

// BodyShape models the surface of a central body. Positions handed to and
// returned by a shape are expressed in its body-fixed frame.
type BodyShape interface {
	BodyFrame() *Frame
	Transform(point GeodeticPoint) []float64
	TransformToGeodetic(position []float64) GeodeticPoint
}

// OneAxisEllipsoid is an ellipsoid of revolution around the body-frame
// z axis.
type OneAxisEllipsoid struct {
	ae, f, e2 float64
	bodyFrame *Frame
}

// EarthFlattening is the IERS value for the Earth ellipsoid.
const EarthFlattening = 1 / 298.257223563

// NewOneAxisEllipsoid returns an ellipsoid with the given equatorial
// radius (m) and flattening, attached to a body-fixed frame.
func NewOneAxisEllipsoid(ae, f float64, bodyFrame *Frame) *OneAxisEllipsoid {
	if bodyFrame == nil {
		panic("ellipsoid requires a body frame")
	}
	return &OneAxisEllipsoid{ae, f, f * (2 - f), bodyFrame}
}

// BodyFrame implements the BodyShape interface.
func (e *OneAxisEllipsoid) BodyFrame() *Frame { return e.bodyFrame }

// EquatorialRadius returns the equatorial radius in meters.
func (e *OneAxisEllipsoid) EquatorialRadius() float64 { return e.ae }

// Transform converts a geodetic point to Cartesian coordinates in the
// body frame.
func (e *OneAxisEllipsoid) Transform(p GeodeticPoint) []float64 {
	sinφ, cosφ := math.Sincos(p.Latitude)
	sinλ, cosλ := math.Sincos(p.Longitude)
	n := e.ae / math.Sqrt(1-e.e2*sinφ*sinφ)
	return []float64{
		(n + p.Altitude) * cosφ * cosλ,
		(n + p.Altitude) * cosφ * sinλ,
		(n*(1-e.e2) + p.Altitude) * sinφ,
	}
}

// TransformToGeodetic converts Cartesian coordinates in the body frame to
// a geodetic point, recovering the latitude by fixed-point iteration
// (converges in a handful of rounds for any point above the core).
func (e *OneAxisEllipsoid) TransformToGeodetic(position []float64) GeodeticPoint {
	x, y, z := position[0], position[1], position[2]
	λ := math.Atan2(y, x)
	ρ := math.Hypot(x, y)
	if ρ < 1e-9*e.ae {
		// On the rotation axis the iteration is degenerate; the polar
		// closed form uses the semi-minor axis directly.
		return GeodeticPoint{λ, sign(z) * math.Pi / 2, math.Abs(z) - e.ae*(1-e.f)}
	}
	φ := math.Atan2(z, ρ*(1-e.e2))
	var h float64
	for iter := 0; iter < 10; iter++ {
		sinφ := math.Sin(φ)
		n := e.ae / math.Sqrt(1-e.e2*sinφ*sinφ)
		h = ρ/math.Cos(φ) - n
		φNew := math.Atan2(z, ρ*(1-e.e2*n/(n+h)))
		if math.Abs(φNew-φ) < 1e-12 {
			φ = φNew
			break
		}
		φ = φNew
	}
	return GeodeticPoint{λ, φ, h}
}
