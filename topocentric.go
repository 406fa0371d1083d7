package orekit

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// TopocentricFrame is a frame anchored at a fixed surface point of a body
// shape, with x pointing east, y north and z toward the zenith. Its
// transform from the body-fixed parent is constant: a translation to the
// surface point followed by the axis-aligning rotation.
type TopocentricFrame struct {
	*Frame
	point GeodeticPoint
}

// NewTopocentricFrame returns a topocentric frame at the given surface
// point of the body shape.
func NewTopocentricFrame(shape BodyShape, point GeodeticPoint, name string) *TopocentricFrame {
	t := &TopocentricFrame{point: point}
	r := mat64.NewDense(3, 3, nil)
	r.SetRow(0, t.East())
	r.SetRow(1, t.North())
	r.SetRow(2, t.Zenith())
	origin := shape.Transform(point)
	fixed := NewTransform(scale(-1, MxV33(r, origin)), []float64{0, 0, 0}, r, []float64{0, 0, 0})
	t.Frame = NewFixedFrame(shape.BodyFrame(), fixed, name)
	return t
}

// Point returns the surface point the frame is anchored at.
func (t *TopocentricFrame) Point() GeodeticPoint { return t.point }

// Zenith returns the zenith direction in the parent body frame: the
// normal to the local horizontal plane.
func (t *TopocentricFrame) Zenith() []float64 {
	sinφ, cosφ := math.Sincos(t.point.Latitude)
	sinλ, cosλ := math.Sincos(t.point.Longitude)
	return []float64{cosλ * cosφ, sinλ * cosφ, sinφ}
}

// Nadir returns the nadir direction in the parent body frame.
func (t *TopocentricFrame) Nadir() []float64 {
	return scale(-1, t.Zenith())
}

// North returns the north direction in the parent body frame: in the
// horizontal plane, along the local meridian.
func (t *TopocentricFrame) North() []float64 {
	sinφ, cosφ := math.Sincos(t.point.Latitude)
	sinλ, cosλ := math.Sincos(t.point.Longitude)
	return []float64{-cosλ * sinφ, -sinλ * sinφ, cosφ}
}

// South returns the south direction in the parent body frame.
func (t *TopocentricFrame) South() []float64 {
	return scale(-1, t.North())
}

// East returns the east direction in the parent body frame: in the
// horizontal plane, completing the direct (east, north, zenith) triad.
func (t *TopocentricFrame) East() []float64 {
	sinλ, cosλ := math.Sincos(t.point.Longitude)
	return []float64{-sinλ, cosλ, 0}
}

// West returns the west direction in the parent body frame.
func (t *TopocentricFrame) West() []float64 {
	return scale(-1, t.East())
}

// Elevation returns the elevation of an external point above the local
// horizontal, given the point coordinates in an arbitrary frame.
func (t *TopocentricFrame) Elevation(extPoint []float64, frame *Frame, date AbsoluteDate) float64 {
	p := frame.TransformTo(t.Frame, date).TransformPosition(extPoint)
	return math.Asin(p[2] / norm(p))
}

// Azimuth returns the azimuth of an external point, measured clockwise
// from north (increasing toward east) and normalized into [0, 2π).
func (t *TopocentricFrame) Azimuth(extPoint []float64, frame *Frame, date AbsoluteDate) float64 {
	p := frame.TransformTo(t.Frame, date).TransformPosition(extPoint)
	return NormalizeTwoPi(math.Atan2(p[0], p[1]))
}

// Range returns the distance from the frame origin to an external point.
func (t *TopocentricFrame) Range(extPoint []float64, frame *Frame, date AbsoluteDate) float64 {
	p := frame.TransformTo(t.Frame, date).TransformPosition(extPoint)
	return norm(p)
}

// RangeRate returns the relative rate along the line of sight (doppler)
// of an external position/velocity pair.
func (t *TopocentricFrame) RangeRate(extPV PVCoordinates, frame *Frame, date AbsoluteDate) float64 {
	pv := frame.TransformTo(t.Frame, date).TransformPV(extPV)
	return dot(pv.Position, pv.Velocity) / norm(pv.Position)
}
