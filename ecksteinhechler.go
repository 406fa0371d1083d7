package orekit

import "math"

// EcksteinHechlerPropagator analytically propagates a near-circular orbit
// around an oblate body. The mean equinoctial elements drift secularly
// under the even zonal harmonics while the semi-major axis stays fixed.
// The model only holds for small eccentricities and for orbits well above
// the body surface.
type EcksteinHechlerPropagator struct {
	initial SpacecraftState
	mean    EquinoctialOrbit
	ae      float64   // reference radius of the zonal field, m
	μ       float64   // gravitational parameter of the field, m³/s²
	cn0     []float64 // unnormalized zonal coefficients C20 to C60
	status  propagationStatus
}

// maxEHEccentricity bounds the regime in which the expansion holds.
const maxEHEccentricity = 0.1

// NewEcksteinHechlerPropagator builds the propagator from an initial
// state and the zonal field (reference radius, gravitational parameter
// and unnormalized coefficients C20 to C60). The initial orbit is
// recomputed with the field's gravitational parameter.
func NewEcksteinHechlerPropagator(initial SpacecraftState, ae, μ, c20, c30, c40, c50, c60 float64) (*EcksteinHechlerPropagator, error) {
	pv := initial.PVCoordinates()
	mean := NewEquinoctialFromPV(pv, initial.Date(), initial.Frame(), μ)
	p := &EcksteinHechlerPropagator{
		initial: initial,
		mean:    mean,
		ae:      ae,
		μ:       μ,
		cn0:     []float64{c20, c30, c40, c50, c60},
		status:  statusIdle,
	}
	if err := p.checkRegime(mean); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *EcksteinHechlerPropagator) checkRegime(o EquinoctialOrbit) error {
	e := o.E()
	periapsis := o.A() * (1 - e)
	if periapsis < p.ae {
		return newPropagationError(PreconditionOrbitalRegime,
			"underground orbit: periapsis %f m below reference radius %f m", periapsis, p.ae)
	}
	if e > maxEHEccentricity {
		return newPropagationError(PreconditionOrbitalRegime,
			"eccentricity %f too large for a near-circular model", e)
	}
	return nil
}

// secularRates returns the drifts of Ω, ω and of the mean anomaly beyond
// n, from the leading J2 terms with a J4 correction.
func (p *EcksteinHechlerPropagator) secularRates() (raanDot, argDot, meanDot float64) {
	a := p.mean.A()
	e := p.mean.E()
	i := p.mean.I()
	n := math.Sqrt(p.μ / math.Pow(a, 3))
	slr := a * (1 - e*e)
	J2 := -p.cn0[0]
	J4 := -p.cn0[2]
	Rp := p.ae / slr
	k := n * Rp * Rp
	cosi := math.Cos(i)
	raanDot = -k * cosi * ((3/2.)*J2 - ((9/4.)*J2*J2+(15/4.)*J4)*Rp)
	argDot = k * ((3/4.)*(5*cosi*cosi-1)*J2 - (15/4.)*J4*Rp)
	meanDot = k * (3 / 4.) * math.Sqrt(1-e*e) * (3*cosi*cosi - 1) * J2
	return
}

// Propagate returns the state at the target date. The regime checks run
// again on the propagated elements, so a decaying fit that was valid at
// the initial date still fails cleanly later.
func (p *EcksteinHechlerPropagator) Propagate(target AbsoluteDate) (SpacecraftState, error) {
	p.status = statusPropagating
	Δt := target.Minus(p.mean.Date())
	raanDot, argDot, meanDot := p.secularRates()
	n := math.Sqrt(p.μ / math.Pow(p.mean.A(), 3))
	Δϖ := (raanDot + argDot) * Δt
	ΔΩ := raanDot * Δt
	sinϖ, cosϖ := math.Sincos(Δϖ)
	sinΩ, cosΩ := math.Sincos(ΔΩ)
	ex := p.mean.Ex()*cosϖ - p.mean.Ey()*sinϖ
	ey := p.mean.Ex()*sinϖ + p.mean.Ey()*cosϖ
	hx := p.mean.Hx()*cosΩ - p.mean.Hy()*sinΩ
	hy := p.mean.Hx()*sinΩ + p.mean.Hy()*cosΩ
	λM := p.mean.Longitude(MeanLongitude) + (n+meanDot+raanDot+argDot)*Δt
	orbit, err := NewEquinoctialOrbit(p.mean.A(), ex, ey, hx, hy, λM,
		MeanLongitude, target, p.mean.Frame(), p.μ)
	if err != nil {
		p.status = statusFailed
		return SpacecraftState{}, err
	}
	if err := p.checkRegime(orbit); err != nil {
		p.status = statusFailed
		return SpacecraftState{}, err
	}
	p.status = statusIdle
	p.mean = orbit
	state := p.initial
	state.Orbit = orbit
	p.initial = state
	return state, nil
}
