package orekit

// ForceModel contributes a perturbing acceleration to a numerically
// integrated trajectory. The returned acceleration is expressed in the
// frame of the provided state, in m/s^2, and excludes the central body
// point-mass term which the propagator always applies itself.
type ForceModel interface {
	// Acceleration evaluates the perturbation at the given state. Errors
	// are hard failures (e.g. data outside its validity window) and abort
	// the propagation.
	Acceleration(s SpacecraftState) ([]float64, error)
	// SwitchingFunctions returns the discontinuity markers of this model.
	// Most models have none and return nil.
	SwitchingFunctions() []SwitchingFunction
}

// MeanElementModel contributes averaged rates to a semi-analytical
// propagation over mean equinoctial elements (a, ex, ey, hx, hy, λM).
// The central n contribution to dλM/dt belongs to the propagator, not to
// the models.
type MeanElementModel interface {
	// MeanElementRate returns the secular element rates in element order.
	MeanElementRate(mean EquinoctialOrbit) ([]float64, error)
	// ShortPeriodics returns the osculating-minus-mean element offsets at
	// the given mean state. It is only called when an osculating state is
	// requested, never inside the integration loop.
	ShortPeriodics(mean EquinoctialOrbit) ([]float64, error)
}
