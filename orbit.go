package orekit

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e4                          // 20 km
	velocityε     = 1e-3                         // in m/s
)

// AnomalyType selects the anomaly convention of a Keplerian orbit.
type AnomalyType uint8

// Supported anomaly conventions.
const (
	TrueAnomaly AnomalyType = iota
	EccentricAnomaly
	MeanAnomaly
)

func (t AnomalyType) String() string {
	switch t {
	case TrueAnomaly:
		return "true"
	case EccentricAnomaly:
		return "eccentric"
	case MeanAnomaly:
		return "mean"
	}
	panic("cannot stringify unknown anomaly type")
}

// OrbitalState is one instant's orbital state: a parameterization-specific
// scalar set tagged with the date, frame and gravitational parameter it is
// valid in. States are semantically immutable: propagation returns new
// instances.
type OrbitalState interface {
	Date() AbsoluteDate
	Frame() *Frame
	Mu() float64
	PVCoordinates() PVCoordinates
}

// KeplerianOrbit defines an orbit via its classical orbital elements.
// Angles are stored in radians and the anomaly is kept as true anomaly,
// converting on demand. Exactly circular or exactly equatorial orbits make
// some angles ill-defined; accessors then return whatever the formulas
// produce, they do not flag an error.
type KeplerianOrbit struct {
	a, e, i, Ω, ω, ν float64
	date             AbsoluteDate
	frame            *Frame
	μ                float64
}

// NewKeplerianOrbit returns an orbit from its classical elements, with the
// anomaly given in the chosen convention (radians). A mean anomaly is
// converted through Kepler's equation and may fail to converge.
func NewKeplerianOrbit(a, e, i, ω, Ω, anomaly float64, anomalyType AnomalyType, date AbsoluteDate, frame *Frame, μ float64) (KeplerianOrbit, error) {
	var ν float64
	switch anomalyType {
	case TrueAnomaly:
		ν = anomaly
	case EccentricAnomaly:
		ν = trueFromEccentric(anomaly, e)
	case MeanAnomaly:
		E, err := solveKepler(anomaly, e)
		if err != nil {
			return KeplerianOrbit{}, err
		}
		ν = trueFromEccentric(E, e)
	default:
		panic(fmt.Errorf("unknown anomaly type %d", anomalyType))
	}
	return KeplerianOrbit{a, e, i, Ω, ω, NormalizeTwoPi(ν), date, frame, μ}, nil
}

// NewKeplerianFromPV resets the Keplerian elements from a Cartesian state.
// From Vallado's RV2COE.
func NewKeplerianFromPV(pv PVCoordinates, date AbsoluteDate, frame *Frame, μ float64) KeplerianOrbit {
	R, V := pv.Position, pv.Velocity
	hVec := cross(R, V)
	n := cross([]float64{0, 0, 1}, hVec)
	v := norm(V)
	r := norm(R)
	ξ := (v*v)/2 - μ/r
	a := -μ / (2 * ξ)
	eVec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		eVec[i] = ((v*v-μ/r)*R[i] - dot(R, V)*V[i]) / μ
	}
	e := norm(eVec)
	i := math.Acos(hVec[2] / norm(hVec))
	ω := math.Acos(dot(n, eVec) / (norm(n) * e))
	if math.IsNaN(ω) {
		ω = 0
	}
	if eVec[2] < 0 {
		ω = 2*math.Pi - ω
	}
	Ω := math.Acos(n[0] / norm(n))
	if math.IsNaN(Ω) {
		Ω = 0
	}
	if n[1] < 0 {
		Ω = 2*math.Pi - Ω
	}
	cosν := dot(eVec, R) / (e * r)
	if abscosν := math.Abs(cosν); abscosν > 1 && floats.EqualWithinAbs(abscosν, 1, 1e-12) {
		// Welcome to the edge case which took about 1.5 hours of my time.
		cosν = sign(cosν)
	}
	ν := math.Acos(cosν)
	if dot(R, V) < 0 {
		ν = 2*math.Pi - ν
	}
	// Fix rounding errors.
	i = math.Mod(i, 2*math.Pi)
	Ω = math.Mod(Ω, 2*math.Pi)
	ω = math.Mod(ω, 2*math.Pi)
	ν = math.Mod(ν, 2*math.Pi)
	return KeplerianOrbit{a, e, i, Ω, ω, ν, date, frame, μ}
}

// Date implements the OrbitalState interface.
func (o KeplerianOrbit) Date() AbsoluteDate { return o.date }

// Frame implements the OrbitalState interface.
func (o KeplerianOrbit) Frame() *Frame { return o.frame }

// Mu implements the OrbitalState interface.
func (o KeplerianOrbit) Mu() float64 { return o.μ }

// A returns the semi-major axis.
func (o KeplerianOrbit) A() float64 { return o.a }

// E returns the eccentricity.
func (o KeplerianOrbit) E() float64 { return o.e }

// I returns the inclination.
func (o KeplerianOrbit) I() float64 { return o.i }

// RAAN returns the right ascension of the ascending node.
func (o KeplerianOrbit) RAAN() float64 { return o.Ω }

// PerigeeArgument returns the argument of periapsis.
func (o KeplerianOrbit) PerigeeArgument() float64 { return o.ω }

// Anomaly returns the anomaly in the requested convention.
func (o KeplerianOrbit) Anomaly(t AnomalyType) float64 {
	switch t {
	case TrueAnomaly:
		return o.ν
	case EccentricAnomaly:
		sinE, cosE := o.SinCosE()
		return NormalizeTwoPi(math.Atan2(sinE, cosE))
	case MeanAnomaly:
		sinE, cosE := o.SinCosE()
		E := math.Atan2(sinE, cosE)
		return NormalizeTwoPi(E - o.e*math.Sin(E))
	}
	panic(fmt.Errorf("unknown anomaly type %d", t))
}

// Energyξ returns the specific mechanical energy ξ.
func (o KeplerianOrbit) Energyξ() float64 {
	return -o.μ / (2 * o.a)
}

// Tildeω returns the longitude of periapsis.
func (o KeplerianOrbit) Tildeω() float64 {
	return math.Mod(o.ω+o.Ω, 2*math.Pi)
}

// TrueLongλ returns the *approximate* true longitude (cf. Vallado page 103).
// NOTE: One should only need this for equatorial orbits.
func (o KeplerianOrbit) TrueLongλ() float64 {
	return math.Mod(o.ω+o.Ω+o.ν, 2*math.Pi)
}

// ArgLatitudeU returns the argument of latitude.
func (o KeplerianOrbit) ArgLatitudeU() float64 {
	return math.Mod(o.ν+o.ω, 2*math.Pi)
}

// SemiParameter returns the semi-parameter.
func (o KeplerianOrbit) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// Apoapsis returns the apoapsis radius.
func (o KeplerianOrbit) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the periapsis radius.
func (o KeplerianOrbit) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// SinCosE returns the eccentric anomaly trig functions (sin and cos).
func (o KeplerianOrbit) SinCosE() (sinE, cosE float64) {
	sinν, cosν := math.Sincos(o.ν)
	denom := 1 + o.e*cosν
	sinE = math.Sqrt(1-o.e*o.e) * sinν / denom
	cosE = (o.e + cosν) / denom
	return
}

// MeanMotion returns the mean motion in rad/s.
func (o KeplerianOrbit) MeanMotion() float64 {
	return math.Sqrt(o.μ / math.Pow(o.a, 3))
}

// Period returns the period of this orbit.
func (o KeplerianOrbit) Period() time.Duration {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(o.a, 3)/o.μ)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

// RNorm returns the norm of the radius vector, but without computing the
// radius vector itself.
func (o KeplerianOrbit) RNorm() float64 {
	return o.SemiParameter() / (1 + o.e*math.Cos(o.ν))
}

// PVCoordinates implements the OrbitalState interface (COE2RV).
func (o KeplerianOrbit) PVCoordinates() PVCoordinates {
	p := o.SemiParameter()
	sinν, cosν := math.Sincos(o.ν)
	R := []float64{p * cosν / (1 + o.e*cosν), p * sinν / (1 + o.e*cosν), 0}
	R = PQW2ECI(o.i, o.ω, o.Ω, R)
	V := []float64{-math.Sqrt(o.μ/p) * sinν, math.Sqrt(o.μ/p) * (o.e + cosν), 0}
	V = PQW2ECI(o.i, o.ω, o.Ω, V)
	return PVCoordinates{R, V}
}

// String implements the stringer interface (hence the value receiver).
func (o KeplerianOrbit) String() string {
	return fmt.Sprintf("a=%.1f e=%.6f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.ν))
}

// Equals returns whether two orbits are identical with free true anomaly.
// Use StrictlyEquals to also check true anomaly.
func (o KeplerianOrbit) Equals(o1 KeplerianOrbit) (bool, error) {
	if o.frame != o1.frame {
		return false, errors.New("different frame")
	}
	if !floats.EqualWithinAbs(o.a, o1.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(o.e, o1.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(o.i, o1.i, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !floats.EqualWithinAbs(o.Ω, o1.Ω, angleε) {
		return false, errors.New("RAAN invalid")
	}
	if !floats.EqualWithinAbs(o.ω, o1.ω, angleε) {
		return false, errors.New("argument of perigee invalid")
	}
	return true, nil
}

// StrictlyEquals returns whether two orbits are identical.
func (o KeplerianOrbit) StrictlyEquals(o1 KeplerianOrbit) (bool, error) {
	if !floats.EqualWithinAbs(o.ν, o1.ν, angleε) {
		return false, errors.New("true anomaly invalid")
	}
	return o.Equals(o1)
}

// trueFromEccentric converts the eccentric anomaly to the true anomaly via
// the standard half-angle tangent identity (in atan2 form).
func trueFromEccentric(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	β := 1 - e*cosE
	return math.Atan2(math.Sqrt(1-e*e)*sinE/β, (cosE-e)/β)
}

// solveKepler solves Kepler's equation M = E - e sin E for E by Newton
// iteration. Tolerance and iteration budget come from the configuration.
func solveKepler(M, e float64) (float64, error) {
	cfg := propConfig()
	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for iter := 0; iter < cfg.solverMaxIter; iter++ {
		ΔE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= ΔE
		if math.Abs(ΔE) < cfg.solverTol {
			return E, nil
		}
	}
	return 0, ConvergenceError{"Kepler's equation", cfg.solverMaxIter}
}
