package orekit

import "math"

// SolarActivityProvider exposes the solar and geomagnetic indices driving
// an atmosphere model. Providers have a hard validity window: requests
// outside [MinDate, MaxDate] fail, they are never extrapolated.
type SolarActivityProvider interface {
	MinDate() AbsoluteDate
	MaxDate() AbsoluteDate
	F107(date AbsoluteDate) (float64, error)
	Ap(date AbsoluteDate) (float64, error)
}

// ConstantSolarActivity returns fixed indices over a validity window.
type ConstantSolarActivity struct {
	f107, ap float64
	min, max AbsoluteDate
}

// NewConstantSolarActivity builds a provider valid on [min, max].
func NewConstantSolarActivity(f107, ap float64, min, max AbsoluteDate) ConstantSolarActivity {
	if max.Before(min) {
		panic("solar activity window ends before it starts")
	}
	return ConstantSolarActivity{f107, ap, min, max}
}

func (c ConstantSolarActivity) MinDate() AbsoluteDate { return c.min }
func (c ConstantSolarActivity) MaxDate() AbsoluteDate { return c.max }

func (c ConstantSolarActivity) check(date AbsoluteDate) error {
	if date.Before(c.min) || date.After(c.max) {
		return DateOutOfRangeError{date, c.min, c.max}
	}
	return nil
}

func (c ConstantSolarActivity) F107(date AbsoluteDate) (float64, error) {
	if err := c.check(date); err != nil {
		return 0, err
	}
	return c.f107, nil
}

func (c ConstantSolarActivity) Ap(date AbsoluteDate) (float64, error) {
	if err := c.check(date); err != nil {
		return 0, err
	}
	return c.ap, nil
}

// Atmosphere provides the local density and the velocity of the
// atmosphere itself, both needed to build the relative wind.
type Atmosphere interface {
	Density(date AbsoluteDate, position []float64, frame *Frame) (float64, error)
	Velocity(date AbsoluteDate, position []float64, frame *Frame) ([]float64, error)
}

// ExponentialAtmosphere decays density exponentially with geodetic
// altitude, scaled by the F10.7 index when an activity provider is set.
type ExponentialAtmosphere struct {
	shape     BodyShape
	ρ0        float64 // reference density, kg/m³
	h0        float64 // reference altitude, m
	hScale    float64 // scale height, m
	activity  SolarActivityProvider
	quietF107 float64
}

// NewExponentialAtmosphere builds the model without activity scaling.
func NewExponentialAtmosphere(shape BodyShape, ρ0, h0, hScale float64) *ExponentialAtmosphere {
	return &ExponentialAtmosphere{shape: shape, ρ0: ρ0, h0: h0, hScale: hScale}
}

// WithActivity enables F10.7 scaling of the density around the given
// quiet-sun reference value.
func (a *ExponentialAtmosphere) WithActivity(provider SolarActivityProvider, quietF107 float64) *ExponentialAtmosphere {
	a.activity = provider
	a.quietF107 = quietF107
	return a
}

// Density returns the density at the given position, in kg/m³. The
// position is converted to the body frame before the geodetic altitude
// is computed.
func (a *ExponentialAtmosphere) Density(date AbsoluteDate, position []float64, frame *Frame) (float64, error) {
	toBody := frame.TransformTo(a.shape.BodyFrame(), date)
	bodyPos := toBody.TransformPosition(position)
	alt := a.shape.TransformToGeodetic(bodyPos).Altitude
	ρ := a.ρ0 * math.Exp(-(alt-a.h0)/a.hScale)
	if a.activity != nil {
		f107, err := a.activity.F107(date)
		if err != nil {
			return 0, err
		}
		ρ *= f107 / a.quietF107
	}
	return ρ, nil
}

// Velocity returns the co-rotation velocity of the atmosphere in the
// requested frame, obtained by expressing a point at rest in the body
// frame back in that frame.
func (a *ExponentialAtmosphere) Velocity(date AbsoluteDate, position []float64, frame *Frame) ([]float64, error) {
	toBody := frame.TransformTo(a.shape.BodyFrame(), date)
	bodyPos := toBody.TransformPosition(position)
	fromBody := a.shape.BodyFrame().TransformTo(frame, date)
	pv := fromBody.TransformPV(PVCoordinates{Position: bodyPos, Velocity: []float64{0, 0, 0}})
	return pv.Velocity, nil
}

// AtmosphericDrag opposes the velocity of the spacecraft relative to the
// atmosphere with the usual cannonball model.
type AtmosphericDrag struct {
	atmosphere Atmosphere
	cd         float64 // drag coefficient
	area       float64 // cross section, m²
}

// NewAtmosphericDrag builds the drag force for the given cross section.
func NewAtmosphericDrag(atmosphere Atmosphere, cd, area float64) AtmosphericDrag {
	if atmosphere == nil {
		panic("drag needs an atmosphere model")
	}
	return AtmosphericDrag{atmosphere, cd, area}
}

// Acceleration returns −½ ρ (Cd A / m) |vRel| vRel in the state frame.
func (d AtmosphericDrag) Acceleration(s SpacecraftState) ([]float64, error) {
	pv := s.PVCoordinates()
	ρ, err := d.atmosphere.Density(s.Date(), pv.Position, s.Frame())
	if err != nil {
		return nil, err
	}
	vAtm, err := d.atmosphere.Velocity(s.Date(), pv.Position, s.Frame())
	if err != nil {
		return nil, err
	}
	vRel := sub(pv.Velocity, vAtm)
	factor := -0.5 * ρ * d.cd * d.area / s.Mass * norm(vRel)
	return scale(factor, vRel), nil
}

// SwitchingFunctions returns nil, drag varies continuously.
func (d AtmosphericDrag) SwitchingFunctions() []SwitchingFunction { return nil }
