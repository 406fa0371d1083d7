package orekit

import (
	"fmt"
	"math"
)

// LongitudeType selects the longitude argument convention of an
// equinoctial orbit.
type LongitudeType uint8

// Supported longitude conventions.
const (
	TrueLongitude LongitudeType = iota
	EccentricLongitude
	MeanLongitude
)

func (t LongitudeType) String() string {
	switch t {
	case TrueLongitude:
		return "true"
	case EccentricLongitude:
		return "eccentric"
	case MeanLongitude:
		return "mean"
	}
	panic("cannot stringify unknown longitude type")
}

// EquinoctialOrbit defines an orbit via its equinoctial elements
// (a, ex, ey, hx, hy, λ): a non-singular set which stays well defined at
// zero eccentricity and zero inclination. The longitude is stored as true
// longitude and converted on demand. The retrograde singularity (i = π)
// is not handled.
type EquinoctialOrbit struct {
	a, ex, ey, hx, hy, λv float64
	date                  AbsoluteDate
	frame                 *Frame
	μ                     float64
}

// NewEquinoctialOrbit returns an orbit from its equinoctial elements, with
// the longitude given in the chosen convention (radians). A mean longitude
// is converted through the generalized Kepler equation and may fail to
// converge.
func NewEquinoctialOrbit(a, ex, ey, hx, hy, λ float64, longitudeType LongitudeType, date AbsoluteDate, frame *Frame, μ float64) (EquinoctialOrbit, error) {
	var λv float64
	switch longitudeType {
	case TrueLongitude:
		λv = λ
	case EccentricLongitude:
		λv = eccentricToTrueLong(λ, ex, ey)
	case MeanLongitude:
		λE, err := solveLongitudeEquation(λ, ex, ey)
		if err != nil {
			return EquinoctialOrbit{}, err
		}
		λv = eccentricToTrueLong(λE, ex, ey)
	default:
		panic(fmt.Errorf("unknown longitude type %d", longitudeType))
	}
	return EquinoctialOrbit{a, ex, ey, hx, hy, NormalizeTwoPi(λv), date, frame, μ}, nil
}

// NewEquinoctialFromKeplerian converts a Keplerian orbit to its
// equinoctial representation.
func NewEquinoctialFromKeplerian(k KeplerianOrbit) EquinoctialOrbit {
	ϖ := k.ω + k.Ω
	return EquinoctialOrbit{
		a:     k.a,
		ex:    k.e * math.Cos(ϖ),
		ey:    k.e * math.Sin(ϖ),
		hx:    math.Tan(k.i/2) * math.Cos(k.Ω),
		hy:    math.Tan(k.i/2) * math.Sin(k.Ω),
		λv:    NormalizeTwoPi(k.ν + ϖ),
		date:  k.date,
		frame: k.frame,
		μ:     k.μ,
	}
}

// NewEquinoctialFromPV resets the equinoctial elements from a Cartesian
// state. The conversion goes through the Keplerian set; for degenerate
// (circular or equatorial) inputs the intermediate angles are ill-defined
// individually but their sums, which is all the equinoctial set keeps, stay
// meaningful to within floating point noise.
func NewEquinoctialFromPV(pv PVCoordinates, date AbsoluteDate, frame *Frame, μ float64) EquinoctialOrbit {
	return NewEquinoctialFromKeplerian(NewKeplerianFromPV(pv, date, frame, μ))
}

// Date implements the OrbitalState interface.
func (o EquinoctialOrbit) Date() AbsoluteDate { return o.date }

// Frame implements the OrbitalState interface.
func (o EquinoctialOrbit) Frame() *Frame { return o.frame }

// Mu implements the OrbitalState interface.
func (o EquinoctialOrbit) Mu() float64 { return o.μ }

// A returns the semi-major axis.
func (o EquinoctialOrbit) A() float64 { return o.a }

// Ex returns the first eccentricity vector component.
func (o EquinoctialOrbit) Ex() float64 { return o.ex }

// Ey returns the second eccentricity vector component.
func (o EquinoctialOrbit) Ey() float64 { return o.ey }

// Hx returns the first inclination vector component.
func (o EquinoctialOrbit) Hx() float64 { return o.hx }

// Hy returns the second inclination vector component.
func (o EquinoctialOrbit) Hy() float64 { return o.hy }

// E returns the eccentricity.
func (o EquinoctialOrbit) E() float64 {
	return math.Hypot(o.ex, o.ey)
}

// I returns the inclination.
func (o EquinoctialOrbit) I() float64 {
	return 2 * math.Atan(math.Hypot(o.hx, o.hy))
}

// MeanMotion returns the mean motion in rad/s.
func (o EquinoctialOrbit) MeanMotion() float64 {
	return math.Sqrt(o.μ / math.Pow(o.a, 3))
}

// Longitude returns the longitude argument in the requested convention.
func (o EquinoctialOrbit) Longitude(t LongitudeType) float64 {
	switch t {
	case TrueLongitude:
		return o.λv
	case EccentricLongitude:
		return NormalizeTwoPi(trueToEccentricLong(o.λv, o.ex, o.ey))
	case MeanLongitude:
		λE := trueToEccentricLong(o.λv, o.ex, o.ey)
		return NormalizeTwoPi(λE - o.ex*math.Sin(λE) + o.ey*math.Cos(λE))
	}
	panic(fmt.Errorf("unknown longitude type %d", t))
}

// referenceAxes returns the orbital plane basis vectors U, V in the
// tagged frame.
func (o EquinoctialOrbit) referenceAxes() (U, V []float64) {
	hx2 := o.hx * o.hx
	hy2 := o.hy * o.hy
	h2p1 := 1 + hx2 + hy2
	U = []float64{(1 + hx2 - hy2) / h2p1, (2 * o.hx * o.hy) / h2p1, (-2 * o.hy) / h2p1}
	V = []float64{(2 * o.hx * o.hy) / h2p1, (1 - hx2 + hy2) / h2p1, (2 * o.hx) / h2p1}
	return
}

// PVCoordinates implements the OrbitalState interface.
func (o EquinoctialOrbit) PVCoordinates() PVCoordinates {
	λE := trueToEccentricLong(o.λv, o.ex, o.ey)
	sinLE, cosLE := math.Sincos(λE)
	ex2 := o.ex * o.ex
	ey2 := o.ey * o.ey
	β := 1 / (1 + math.Sqrt(1-ex2-ey2))
	// In-plane coordinates and their derivatives w.r.t. time.
	x := o.a * ((1-β*ey2)*cosLE + β*o.ex*o.ey*sinLE - o.ex)
	y := o.a * ((1-β*ex2)*sinLE + β*o.ex*o.ey*cosLE - o.ey)
	r := o.a * (1 - o.ex*cosLE - o.ey*sinLE)
	factor := o.MeanMotion() * o.a * o.a / r
	xDot := factor * (-(1-β*ey2)*sinLE + β*o.ex*o.ey*cosLE)
	yDot := factor * ((1-β*ex2)*cosLE - β*o.ex*o.ey*sinLE)
	U, V := o.referenceAxes()
	return PVCoordinates{
		Position: add(scale(x, U), scale(y, V)),
		Velocity: add(scale(xDot, U), scale(yDot, V)),
	}
}

// ToKeplerian converts this orbit to its Keplerian representation.
func (o EquinoctialOrbit) ToKeplerian() KeplerianOrbit {
	e := o.E()
	i := o.I()
	Ω := math.Atan2(o.hy, o.hx)
	ϖ := math.Atan2(o.ey, o.ex)
	return KeplerianOrbit{
		a:     o.a,
		e:     e,
		i:     i,
		Ω:     NormalizeTwoPi(Ω),
		ω:     NormalizeTwoPi(ϖ - Ω),
		ν:     NormalizeTwoPi(o.λv - ϖ),
		date:  o.date,
		frame: o.frame,
		μ:     o.μ,
	}
}

func (o EquinoctialOrbit) String() string {
	return fmt.Sprintf("a=%.1f ex=%.6f ey=%.6f hx=%.6f hy=%.6f λv=%.3f", o.a, o.ex, o.ey, o.hx, o.hy, Rad2deg(o.λv))
}

// trueToEccentricLong converts the true longitude argument to the
// eccentric one via the half-angle tangent identity.
func trueToEccentricLong(λv, ex, ey float64) float64 {
	ε := math.Sqrt(1 - ex*ex - ey*ey)
	sinLv, cosLv := math.Sincos(λv)
	num := ey*cosLv - ex*sinLv
	den := ε + 1 + ex*cosLv + ey*sinLv
	return λv + 2*math.Atan(num/den)
}

// eccentricToTrueLong converts the eccentric longitude argument to the
// true one via the half-angle tangent identity.
func eccentricToTrueLong(λE, ex, ey float64) float64 {
	ε := math.Sqrt(1 - ex*ex - ey*ey)
	sinLE, cosLE := math.Sincos(λE)
	num := ex*sinLE - ey*cosLE
	den := ε + 1 - ex*cosLE - ey*sinLE
	return λE + 2*math.Atan(num/den)
}

// solveLongitudeEquation solves the generalized Kepler equation
// λM = λE - ex sin λE + ey cos λE for λE by Newton iteration.
func solveLongitudeEquation(λM, ex, ey float64) (float64, error) {
	cfg := propConfig()
	λE := λM
	for iter := 0; iter < cfg.solverMaxIter; iter++ {
		sinLE, cosLE := math.Sincos(λE)
		Δ := (λE - ex*sinLE + ey*cosLE - λM) / (1 - ex*cosLE - ey*sinLE)
		λE -= Δ
		if math.Abs(Δ) < cfg.solverTol {
			return λE, nil
		}
	}
	return 0, ConvergenceError{"longitude equation", cfg.solverMaxIter}
}
