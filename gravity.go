package orekit

import (
	"math"
)

// ZonalGravity models the axisymmetric gravity field departures of the
// central body, up to J4. Accelerations assume the state frame shares its
// z axis with the body spin axis, which holds for the usual inertial
// equatorial frames.
type ZonalGravity struct {
	body   CelestialObject
	degree uint8
}

// NewZonalGravity builds a zonal field of the given degree (2 to 4).
func NewZonalGravity(body CelestialObject, degree uint8) ZonalGravity {
	if degree < 2 || degree > 4 {
		panic("zonal gravity supported only for degrees 2 to 4")
	}
	return ZonalGravity{body, degree}
}

// Acceleration returns the zonal perturbing acceleration at the state
// position (computed via SageMath from the geopotential gradient).
func (g ZonalGravity) Acceleration(s SpacecraftState) ([]float64, error) {
	R := s.PVCoordinates().Position
	x, y, z := R[0], R[1], R[2]
	z2 := z * z
	z3 := z2 * z
	r2 := x*x + y*y + z2
	r252 := math.Pow(r2, 5/2.)
	r272 := math.Pow(r2, 7/2.)
	acc := make([]float64, 3)
	accJ2 := (3 / 2.) * g.body.J(2) * math.Pow(g.body.Radius, 2) * g.body.μ
	acc[0] = accJ2 * (5*x*z2/r272 - x/r252)
	acc[1] = accJ2 * (5*y*z2/r272 - y/r252)
	acc[2] = accJ2 * (5*z3/r272 - 3*z/r252)
	if g.degree >= 3 {
		r292 := math.Pow(r2, 9/2.)
		z4 := z2 * z2
		accJ3 := g.body.J(3) * math.Pow(g.body.Radius, 3) * g.body.μ
		acc[0] += (5 / 2.) * accJ3 * (7*x*z3/r292 - 3*x*z/r272)
		acc[1] += (5 / 2.) * accJ3 * (7*y*z3/r292 - 3*y*z/r272)
		acc[2] += 0.5 * accJ3 * (35*z4/r292 - 30*z2/r272 + 3/r252)
	}
	if g.degree >= 4 {
		z4 := z2 * z2
		accJ4 := (15 / 8.) * g.body.J(4) * math.Pow(g.body.Radius, 4) * g.body.μ / r272
		acc[0] += accJ4 * x * (1 - 14*z2/r2 + 21*z4/(r2*r2))
		acc[1] += accJ4 * y * (1 - 14*z2/r2 + 21*z4/(r2*r2))
		acc[2] += accJ4 * z * (5 - (70/3.)*z2/r2 + 21*z4/(r2*r2))
	}
	return acc, nil
}

// SwitchingFunctions returns nil, the field is smooth.
func (g ZonalGravity) SwitchingFunctions() []SwitchingFunction { return nil }

// MeanElementRate returns the first-order secular drift of the mean
// equinoctial elements. Odd zonals average out over one revolution and
// higher even zonals only enter at the next order, so only J2 contributes.
func (g ZonalGravity) MeanElementRate(mean EquinoctialOrbit) ([]float64, error) {
	a := mean.A()
	e := mean.E()
	i := mean.I()
	n := mean.MeanMotion()
	p := a * (1 - e*e)
	k := n * g.body.J(2) * math.Pow(g.body.Radius/p, 2)
	cosi := math.Cos(i)
	raanDot := -(3 / 2.) * k * cosi
	argDot := (3 / 4.) * k * (5*cosi*cosi - 1)
	meanDot := (3 / 4.) * k * math.Sqrt(1-e*e) * (3*cosi*cosi - 1)
	cuspDot := raanDot + argDot
	rates := make([]float64, 6)
	rates[1] = -mean.Ey() * cuspDot
	rates[2] = mean.Ex() * cuspDot
	rates[3] = -mean.Hy() * raanDot
	rates[4] = mean.Hx() * raanDot
	rates[5] = meanDot + cuspDot
	return rates, nil
}

// ShortPeriodics returns the dominant first-order J2 osculating-minus-mean
// offset, which affects the semi-major axis.
func (g ZonalGravity) ShortPeriodics(mean EquinoctialOrbit) ([]float64, error) {
	kep := mean.ToKeplerian()
	a := kep.A()
	e := kep.E()
	i := kep.I()
	ν := kep.Anomaly(TrueAnomaly)
	u := kep.PerigeeArgument() + ν
	p := a * (1 - e*e)
	r := p / (1 + e*math.Cos(ν))
	ar3 := math.Pow(a/r, 3)
	sin2i := math.Pow(math.Sin(i), 2)
	j2fac := g.body.J(2) * math.Pow(g.body.Radius, 2) / a
	δa := j2fac * ((1-(3/2.)*sin2i)*(ar3-math.Pow(1-e*e, -3/2.)) +
		(3/2.)*sin2i*ar3*math.Cos(2*u))
	offsets := make([]float64, 6)
	offsets[0] = δa
	return offsets, nil
}
