package orekit

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

var (
	σρ    = math.Pow(5.0, 2)  // m²
	σρDot = math.Pow(5e-3, 2) // (m/s)²
)

// Station is a ground station attached to a body surface via its
// topocentric frame. Angles are stored in radians, ranges in meters.
type Station struct {
	Name                       string
	Topo                       *TopocentricFrame
	Elevation                  float64        // minimum elevation for visibility, radians
	RangeNoise, RangeRateNoise *distmv.Normal // Station noise
}

// NewStation returns a new station. Latitude and longitude in degrees,
// altitude in meters, minimum elevation in degrees, noise variances in m²
// and (m/s)².
func NewStation(name string, shape BodyShape, latDeg, longDeg, altitude, elevationDeg, σρ, σρDot float64) Station {
	point := GeodeticPoint{Longitude: Deg2rad(longDeg), Latitude: Deg2rad(latDeg), Altitude: altitude}
	topo := NewTopocentricFrame(shape, point, name)
	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	ρNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{σρ}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	ρDotNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{σρDot}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	return Station{name, topo, Deg2rad(elevationDeg), ρNoise, ρDotNoise}
}

// PerformMeasurement returns whether the spacecraft is visible from the
// station at the state date, and the noisy range and range rate.
func (s Station) PerformMeasurement(state SpacecraftState) Measurement {
	pv := state.PVCoordinates()
	frame := state.Frame()
	date := state.Date()
	el := s.Topo.Elevation(pv.Position, frame, date)
	az := s.Topo.Azimuth(pv.Position, frame, date)
	ρ := s.Topo.Range(pv.Position, frame, date)
	ρDot := s.Topo.RangeRate(pv, frame, date)
	ρNoisy := ρ + s.RangeNoise.Rand(nil)[0]
	ρDotNoisy := ρDot + s.RangeRateNoise.Rand(nil)[0]
	return Measurement{el >= s.Elevation, ρNoisy, ρDotNoisy, ρ, ρDot, el, az, state, s}
}

func (s Station) String() string {
	p := s.Topo.Point()
	return fmt.Sprintf("%s (%f,%f); alt = %f m; el = %f deg", s.Name, Rad2deg(p.Latitude), Rad2deg(p.Longitude), p.Altitude, Rad2deg(s.Elevation))
}

// Measurement stores a measurement of a station.
type Measurement struct {
	Visible                  bool    // Stores whether or not the attempted measurement was visible from the station.
	Range, RangeRate         float64 // Store the noisy range and range rate
	TrueRange, TrueRangeRate float64 // Store the true range and range rate
	Elevation, Azimuth       float64 // radians
	State                    SpacecraftState
	Station                  Station
}

// IsNil returns whether this measurement is empty.
func (m Measurement) IsNil() bool {
	return m.Range == m.RangeRate && m.RangeRate == 0
}

// StateVector returns the measurement as a mat64.Vector
func (m Measurement) StateVector() *mat64.Vector {
	return mat64.NewVector(2, []float64{m.Range, m.RangeRate})
}

// CSV returns the data as CSV (does *not* include the new line)
func (m Measurement) CSV() string {
	return fmt.Sprintf("%f,%f,%f,%f,", m.TrueRange, m.TrueRangeRate, m.Range, m.RangeRate)
}

func (m Measurement) String() string {
	return fmt.Sprintf("%s@%s", m.Station.Name, m.State.Date())
}

// BuiltinStationFromName returns one of the deep space network stations
// attached to the given body shape.
func BuiltinStationFromName(name string, shape BodyShape) Station {
	switch strings.ToLower(name) {
	case "dss13":
		return NewStation("DSS13Goldstone", shape, 35.247164, 243.205, 1071.14904, 6, σρ, σρDot)
	case "dss34":
		return NewStation("DSS34Canberra", shape, -35.398333, 148.981944, 691.750, 6, σρ, σρDot)
	case "dss65":
		return NewStation("DSS65Madrid", shape, 40.427222, 4.250556, 834.939, 6, σρ, σρDot)
	default:
		panic(fmt.Errorf("unknown station `%s`", name))
	}
}
