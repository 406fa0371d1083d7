package orekit

import (
	"math"
	"testing"
)

func TestTransformTranslation(t *testing.T) {
	τ := []float64{100, -200, 300}
	x := NewTranslation(τ)
	got := x.TransformPosition([]float64{1, 2, 3})
	if !vectorsEqualTol(got, []float64{101, -198, 303}, 1e-9) {
		t.Fatalf("translated position = %+v", got)
	}
	// vectors ignore the translation
	v := x.TransformVector([]float64{1, 2, 3})
	if !vectorsEqualTol(v, []float64{1, 2, 3}, 1e-9) {
		t.Fatalf("translated vector = %+v", v)
	}
}

func TestTransformRotation(t *testing.T) {
	x := NewRotation(R3(math.Pi / 2))
	got := x.TransformPosition([]float64{1, 0, 0})
	if !vectorsEqualTol(got, []float64{0, -1, 0}, 1e-9) {
		t.Fatalf("rotated position = %+v", got)
	}
}

func TestTransformComposeInverse(t *testing.T) {
	a := NewTransform([]float64{10, 20, 30}, []float64{1, -1, 0.5}, R1(0.3), []float64{0, 0, 1e-4})
	b := NewTransform([]float64{-5, 12, 7}, []float64{0.1, 0, -0.2}, R3(1.1), []float64{2e-5, 0, 0})
	ab := a.Combine(b)
	roundTrip := ab.Combine(ab.Inverse())
	pv := PVCoordinates{Position: []float64{7e6, -1e5, 2e6}, Velocity: []float64{100, 7500, -30}}
	got := roundTrip.TransformPV(pv)
	if !vectorsEqualTol(got.Position, pv.Position, 1e-6) {
		t.Fatalf("position after round trip = %+v", got.Position)
	}
	if !vectorsEqualTol(got.Velocity, pv.Velocity, 1e-9) {
		t.Fatalf("velocity after round trip = %+v", got.Velocity)
	}
}

func TestTransformRotatingFrameVelocity(t *testing.T) {
	// A point at rest in the origin frame appears to move at -ω×p in a
	// frame rotating at ω.
	ω := EarthRotationRate
	x := NewRotationWithRate(Identity33(), []float64{0, 0, ω})
	pv := PVCoordinates{Position: []float64{7e6, 0, 0}, Velocity: []float64{0, 0, 0}}
	got := x.TransformPV(pv)
	want := []float64{0, -7e6 * ω, 0}
	if !vectorsEqualTol(got.Velocity, want, 1e-9) {
		t.Fatalf("apparent velocity = %+v, expected %+v", got.Velocity, want)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 86400*365.25*17)
	itrf := NewEarthFixedFrame(gcrf, "ITRF")
	there := gcrf.TransformTo(itrf, date)
	back := itrf.TransformTo(gcrf, date)
	pv := PVCoordinates{Position: []float64{7e6, -1e5, 2e6}, Velocity: []float64{100, 7500, -30}}
	got := back.TransformPV(there.TransformPV(pv))
	if !vectorsEqualTol(got.Position, pv.Position, 1e-6) {
		t.Fatalf("position after frame round trip = %+v", got.Position)
	}
	if !vectorsEqualTol(got.Velocity, pv.Velocity, 1e-9) {
		t.Fatalf("velocity after frame round trip = %+v", got.Velocity)
	}
}

func TestFrameSameFrameIdentity(t *testing.T) {
	date := NewAbsoluteDate(J2000Epoch, 0)
	x := gcrf.TransformTo(gcrf, date)
	p := []float64{1, 2, 3}
	if !vectorsEqualTol(x.TransformPosition(p), p, 1e-12) {
		t.Fatal("transform to self is not the identity")
	}
}

func TestFrameDisconnectedGraph(t *testing.T) {
	other := NewRootFrame("other")
	assertPanic(t, func() {
		gcrf.TransformTo(other, J2000Epoch)
	})
}
