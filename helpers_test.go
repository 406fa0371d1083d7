package orekit

import (
	"fmt"
	"math"
	"testing"

	"github.com/gonum/floats"
)

// gcrf is the shared inertial root frame of the tests.
var gcrf = NewRootFrame("EME2000")

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64) bool {
	return vectorsEqualTol(a, b, distanceε)
}

func vectorsEqualTol(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff < angleε || math.Abs(diff-2*math.Pi) < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(Rad2deg(diff)))
}
