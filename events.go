package orekit

import (
	"fmt"
	"math"
)

// SwitchingFunction is a scalar function of state and time whose sign
// change marks a discontinuity in a force model (e.g. shadow entry or
// exit). Implementations hold no history beyond what they need to compute
// g; sign tracking across integration steps belongs to the propagator.
type SwitchingFunction interface {
	Name() string
	G(s SpacecraftState) (float64, error)
}

// eventDetector tracks the sign of one switching function between
// successive integration points.
type eventDetector struct {
	fn     SwitchingFunction
	lastG  float64
	primed bool
}

// crossed reports whether g changed sign since the last recorded value.
func (d *eventDetector) crossed(g float64) bool {
	return d.primed && d.lastG != 0 && sign(g) != sign(d.lastG)
}

func (d *eventDetector) record(g float64) {
	d.lastG = g
	d.primed = true
}

// FindRootTime locates a zero of g between t0 and t1 by bisection, down
// to the configured time tolerance. g(t0) and g(t1) must bracket the root.
func FindRootTime(g func(AbsoluteDate) (float64, error), t0, t1 AbsoluteDate) (AbsoluteDate, error) {
	cfg := propConfig()
	g0, err := g(t0)
	if err != nil {
		return AbsoluteDate{}, err
	}
	g1, err := g(t1)
	if err != nil {
		return AbsoluteDate{}, err
	}
	if sign(g0) == sign(g1) && g0 != 0 && g1 != 0 {
		return AbsoluteDate{}, fmt.Errorf("no sign change in [%s, %s]", t0, t1)
	}
	for iter := 0; iter < cfg.eventMaxIter; iter++ {
		mid := t0.ShiftedBy(t1.Minus(t0) / 2)
		if math.Abs(t1.Minus(t0)) < cfg.eventTimeTol {
			return mid, nil
		}
		gm, err := g(mid)
		if err != nil {
			return AbsoluteDate{}, err
		}
		if gm == 0 {
			return mid, nil
		}
		if sign(gm) == sign(g0) {
			t0, g0 = mid, gm
		} else {
			t1 = mid
		}
	}
	return AbsoluteDate{}, ConvergenceError{"switching function root-finding", cfg.eventMaxIter}
}
