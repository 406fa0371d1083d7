package orekit

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/ready-steady/ode/dopri"
)

var stepSize = 10 * time.Second

// NumericalPropagator integrates the full equations of motion with an
// adaptive Dormand-Prince scheme, restarted on a fixed output grid so
// states can be streamed and switching functions checked at a bounded
// cadence. The held state is only committed once the whole propagation
// has succeeded.
type NumericalPropagator struct {
	state      SpacecraftState
	forces     []ForceModel
	detectors  []*eventDetector
	integrator *dopri.Integrator
	histChan   chan<- propagatedState
	wg         sync.WaitGroup
	status     propagationStatus
	logger     kitlog.Logger
}

// NewNumericalPropagator builds the propagator from an initial state and
// its force models. Switching functions are collected from the models.
func NewNumericalPropagator(initial SpacecraftState, forces []ForceModel) *NumericalPropagator {
	integrator, err := dopri.New(dopri.DefaultConfig())
	if err != nil {
		panic(fmt.Errorf("could not set up the integrator: %s", err))
	}
	var detectors []*eventDetector
	for _, force := range forces {
		for _, fn := range force.SwitchingFunctions() {
			detectors = append(detectors, &eventDetector{fn: fn})
		}
	}
	return &NumericalPropagator{
		state:      initial,
		forces:     forces,
		detectors:  detectors,
		integrator: integrator,
		status:     statusIdle,
		logger:     propLogger("numerical"),
	}
}

// ExportStates streams every committed step to the configured writers
// until Close is called.
func (p *NumericalPropagator) ExportStates(conf ExportConfig) {
	if conf.IsUseless() {
		return
	}
	histChan := make(chan propagatedState, 10)
	p.histChan = histChan
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		StreamStates(conf, histChan)
	}()
}

// Close flushes and closes the state stream, if any.
func (p *NumericalPropagator) Close() {
	if p.histChan != nil {
		close(p.histChan)
		p.wg.Wait()
		p.histChan = nil
	}
}

// State returns the last committed state.
func (p *NumericalPropagator) State() SpacecraftState { return p.state }

// Propagate integrates to the target date, forward or backward. On any
// failure the held state is left untouched, so a later call with a valid
// target starts from the last good state.
func (p *NumericalPropagator) Propagate(target AbsoluteDate) (SpacecraftState, error) {
	if p.status == statusPropagating {
		return SpacecraftState{}, fmt.Errorf("propagation already in progress")
	}
	p.status = statusPropagating
	cur := p.state
	remaining := target.Minus(cur.Date())
	if remaining == 0 {
		p.status = statusIdle
		return cur, nil
	}
	dir := sign(remaining)
	for _, d := range p.detectors {
		g, err := d.fn.G(cur)
		if err != nil {
			return p.fail(err)
		}
		d.record(g)
	}
	for math.Abs(remaining) > 1e-9 {
		h := math.Min(stepSize.Seconds(), math.Abs(remaining))
		next, err := p.integrate(cur, dir*h)
		if err != nil {
			return p.fail(err)
		}
		eventDate, err := p.checkEvents(cur, next)
		if err != nil {
			return p.fail(err)
		}
		if eventDate != nil {
			next, err = p.integrate(cur, eventDate.Minus(cur.Date()))
			if err != nil {
				return p.fail(err)
			}
		}
		for _, d := range p.detectors {
			g, err := d.fn.G(next)
			if err != nil {
				return p.fail(err)
			}
			d.record(g)
		}
		if p.histChan != nil {
			p.histChan <- propagatedState{next.Date(), next}
		}
		cur = next
		remaining = target.Minus(cur.Date())
	}
	p.state = cur
	p.status = statusIdle
	return cur, nil
}

func (p *NumericalPropagator) fail(err error) (SpacecraftState, error) {
	p.status = statusFailed
	var outOfRange DateOutOfRangeError
	if errors.As(err, &outOfRange) {
		err = newPropagationError(PreconditionDate, "%s", outOfRange)
	}
	p.logger.Log("level", "critical", "subsys", "astro", "err", err)
	return SpacecraftState{}, err
}

// checkEvents scans the detectors for a sign change between from and to,
// and locates the earliest crossing by bisection. It returns nil when no
// switching function fired.
func (p *NumericalPropagator) checkEvents(from, to SpacecraftState) (*AbsoluteDate, error) {
	var nearest *AbsoluteDate
	var firedName string
	for _, d := range p.detectors {
		g, err := d.fn.G(to)
		if err != nil {
			return nil, err
		}
		if !d.crossed(g) {
			continue
		}
		fn := d.fn
		gAt := func(date AbsoluteDate) (float64, error) {
			st, err := p.integrate(from, date.Minus(from.Date()))
			if err != nil {
				return 0, err
			}
			return fn.G(st)
		}
		root, err := FindRootTime(gAt, from.Date(), to.Date())
		if err != nil {
			return nil, err
		}
		// a root at the step start was already handled by the previous
		// truncation
		if math.Abs(root.Minus(from.Date())) < 2*propConfig().eventTimeTol {
			continue
		}
		// The step truncates at the first crossing along the propagation
		// direction, so compare elapsed times from the step start, not dates.
		if nearest == nil || math.Abs(root.Minus(from.Date())) < math.Abs(nearest.Minus(from.Date())) {
			nearest = &root
			firedName = d.fn.Name()
		}
	}
	if nearest != nil {
		p.logger.Log("level", "info", "subsys", "astro", "event", firedName, "date", *nearest)
	}
	return nearest, nil
}

// integrate advances from the given state by dt seconds (signed) in one
// adaptive-step solve, without touching the held state.
func (p *NumericalPropagator) integrate(from SpacecraftState, dt float64) (SpacecraftState, error) {
	if dt == 0 {
		return from, nil
	}
	dir := sign(dt)
	pv := from.PVCoordinates()
	μ := from.Orbit.Mu()
	y0 := make([]float64, 7)
	copy(y0[0:3], pv.Position)
	copy(y0[3:6], pv.Velocity)
	y0[6] = from.Mass
	var derivErr error
	eom := func(x float64, y, dy []float64) {
		if derivErr != nil {
			for i := range dy {
				dy[i] = 0
			}
			return
		}
		date := from.Date().ShiftedBy(dir * x)
		R := y[0:3]
		V := y[3:6]
		st := SpacecraftState{
			Orbit:    NewCartesianOrbit(PVCoordinates{Position: R, Velocity: V}, date, from.Frame(), μ),
			Attitude: from.Attitude,
			Mass:     y[6],
		}
		r3 := math.Pow(norm(R), 3)
		accel := scale(-μ/r3, R)
		for _, force := range p.forces {
			fAcc, err := force.Acceleration(st)
			if err != nil {
				derivErr = err
				for i := range dy {
					dy[i] = 0
				}
				return
			}
			accel = add(accel, fAcc)
		}
		for i := 0; i < 3; i++ {
			dy[i] = dir * V[i]
			dy[i+3] = dir * accel[i]
		}
		dy[6] = 0
	}
	xs := []float64{0, math.Abs(dt)}
	values, _, err := p.integrator.Compute(eom, y0, xs)
	if err != nil {
		return SpacecraftState{}, fmt.Errorf("integration failed: %s", err)
	}
	if derivErr != nil {
		return SpacecraftState{}, derivErr
	}
	yEnd := values[7:14]
	for i := 0; i < 6; i++ {
		if math.IsNaN(yEnd[i]) {
			panic(fmt.Errorf("NaN in state vector after %f s from %s", dt, from.Date()))
		}
	}
	date := from.Date().ShiftedBy(dt)
	orbit := NewCartesianOrbit(PVCoordinates{Position: yEnd[0:3], Velocity: yEnd[3:6]}, date, from.Frame(), μ)
	return SpacecraftState{Orbit: orbit, Attitude: from.Attitude, Mass: yEnd[6]}, nil
}
