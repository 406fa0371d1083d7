package orekit

import (
	"fmt"
	"math"
	"time"

	"github.com/ChristopherRabotin/ode"
	kitlog "github.com/go-kit/kit/log"
)

var meanStepSize = 10 * time.Minute

// SemiAnalyticalPropagator integrates slowly varying mean equinoctial
// elements with a fixed-step RK4, using steps far larger than a numerical
// propagator could afford. Short-periodic motion is folded back in only
// when an osculating state is requested, never inside the integration
// loop.
type SemiAnalyticalPropagator struct {
	mean    EquinoctialOrbit
	mass    float64
	att     Attitude
	models  []MeanElementModel
	start   AbsoluteDate
	target  AbsoluteDate
	dir     float64
	span    float64
	lastErr error
	status  propagationStatus
	logger  kitlog.Logger
}

// NewSemiAnalyticalPropagator builds the propagator from an initial
// osculating state, taken as the initial mean state, and the mean element
// models driving it.
func NewSemiAnalyticalPropagator(initial SpacecraftState, models []MeanElementModel) *SemiAnalyticalPropagator {
	mean, ok := initial.Orbit.(EquinoctialOrbit)
	if !ok {
		mean = NewEquinoctialFromPV(initial.PVCoordinates(), initial.Date(), initial.Frame(), initial.Orbit.Mu())
	}
	return &SemiAnalyticalPropagator{
		mean:   mean,
		mass:   initial.Mass,
		att:    initial.Attitude,
		models: models,
		status: statusIdle,
		logger: propLogger("semianalytical"),
	}
}

// MeanState returns the current mean state, without short-periodic terms.
func (p *SemiAnalyticalPropagator) MeanState() SpacecraftState {
	return SpacecraftState{Orbit: p.mean, Attitude: p.att, Mass: p.mass}
}

// OsculatingState adds the short-periodic offsets of every model to the
// current mean elements.
func (p *SemiAnalyticalPropagator) OsculatingState() (SpacecraftState, error) {
	elements := []float64{p.mean.A(), p.mean.Ex(), p.mean.Ey(), p.mean.Hx(), p.mean.Hy(),
		p.mean.Longitude(MeanLongitude)}
	for _, m := range p.models {
		offsets, err := m.ShortPeriodics(p.mean)
		if err != nil {
			return SpacecraftState{}, err
		}
		for i := range elements {
			elements[i] += offsets[i]
		}
	}
	orbit, err := NewEquinoctialOrbit(elements[0], elements[1], elements[2], elements[3],
		elements[4], elements[5], MeanLongitude, p.mean.Date(), p.mean.Frame(), p.mean.Mu())
	if err != nil {
		return SpacecraftState{}, err
	}
	return SpacecraftState{Orbit: orbit, Attitude: p.att, Mass: p.mass}, nil
}

// Propagate advances the mean elements to the target date and returns the
// osculating state there.
func (p *SemiAnalyticalPropagator) Propagate(target AbsoluteDate) (SpacecraftState, error) {
	if p.status == statusPropagating {
		return SpacecraftState{}, fmt.Errorf("propagation already in progress")
	}
	Δ := target.Minus(p.mean.Date())
	if Δ == 0 {
		return p.OsculatingState()
	}
	p.status = statusPropagating
	p.start = p.mean.Date()
	p.target = target
	p.dir = sign(Δ)
	p.span = math.Abs(Δ)
	p.lastErr = nil
	// uniform steps sized to land exactly on the target date
	steps := math.Ceil(p.span / meanStepSize.Seconds())
	h := p.span / steps
	ode.NewRK4(0, h, p).Solve() // Blocking.
	if p.lastErr != nil {
		p.status = statusFailed
		p.logger.Log("level", "critical", "subsys", "astro", "err", p.lastErr)
		return SpacecraftState{}, p.lastErr
	}
	p.status = statusIdle
	return p.OsculatingState()
}

// GetState implements the integrator state in mean element order.
func (p *SemiAnalyticalPropagator) GetState() []float64 {
	return []float64{p.mean.A(), p.mean.Ex(), p.mean.Ey(), p.mean.Hx(), p.mean.Hy(),
		p.mean.Longitude(MeanLongitude)}
}

// SetState rebuilds the mean orbit from the integrator state.
func (p *SemiAnalyticalPropagator) SetState(t float64, s []float64) {
	if p.lastErr != nil {
		return
	}
	date := p.start.ShiftedBy(p.dir * t)
	λM := math.Mod(s[5], 2*math.Pi)
	orbit, err := NewEquinoctialOrbit(s[0], s[1], s[2], s[3], s[4], λM,
		MeanLongitude, date, p.mean.Frame(), p.mean.Mu())
	if err != nil {
		p.lastErr = err
		return
	}
	p.mean = orbit
}

// Stop implements the integrator stop condition.
func (p *SemiAnalyticalPropagator) Stop(t float64) bool {
	if p.lastErr != nil {
		return true
	}
	return t >= p.span-1e-9
}

// Func implements the mean element rates for the integrator: the central
// mean motion on λM plus the secular contribution of each model.
func (p *SemiAnalyticalPropagator) Func(t float64, f []float64) []float64 {
	fDot := make([]float64, 6)
	if p.lastErr != nil {
		return fDot
	}
	date := p.start.ShiftedBy(p.dir * t)
	orbit, err := NewEquinoctialOrbit(f[0], f[1], f[2], f[3], f[4], math.Mod(f[5], 2*math.Pi),
		MeanLongitude, date, p.mean.Frame(), p.mean.Mu())
	if err != nil {
		p.lastErr = err
		return fDot
	}
	fDot[5] = orbit.MeanMotion()
	for _, m := range p.models {
		rates, err := m.MeanElementRate(orbit)
		if err != nil {
			p.lastErr = err
			return make([]float64, 6)
		}
		for i := range fDot {
			fDot[i] += rates[i]
		}
	}
	for i := range fDot {
		fDot[i] *= p.dir
	}
	return fDot
}
