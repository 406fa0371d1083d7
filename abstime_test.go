package orekit

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestAbsoluteDateEpochs(t *testing.T) {
	if !floats.EqualWithinAbs(J2000Epoch.JD(), JulianDayJ2000, 1e-9) {
		t.Fatalf("J2000 epoch JD = %f", J2000Epoch.JD())
	}
	if !floats.EqualWithinAbs(ModifiedJulianEpoch.JD(), JulianDayMJD, 1e-9) {
		t.Fatalf("MJD epoch JD = %f", ModifiedJulianEpoch.JD())
	}
	if !floats.EqualWithinAbs(CNES1950Epoch.MJD(), 33282, 1e-9) {
		t.Fatalf("CNES 1950 epoch MJD = %f", CNES1950Epoch.MJD())
	}
}

func TestAbsoluteDateArithmetic(t *testing.T) {
	d0 := NewAbsoluteDate(J2000Epoch, 100)
	d1 := d0.ShiftedBy(50.5)
	if !floats.EqualWithinAbs(d1.Minus(d0), 50.5, 1e-12) {
		t.Fatalf("elapsed duration = %f", d1.Minus(d0))
	}
	if !d0.Before(d1) || !d1.After(d0) {
		t.Fatal("date ordering broken")
	}
	if d0.Compare(d1) != -1 || d1.Compare(d0) != 1 || d0.Compare(d0) != 0 {
		t.Fatal("date comparison broken")
	}
	if !d0.ShiftedBy(0).Equals(d0) {
		t.Fatal("zero shift changed the date")
	}
}

func TestAbsoluteDateTimeRoundTrip(t *testing.T) {
	ref := time.Date(2017, 3, 15, 12, 30, 45, 0, time.UTC)
	d := DateFromTime(ref)
	back := d.Time()
	if drift := back.Sub(ref); drift > time.Millisecond || drift < -time.Millisecond {
		t.Fatalf("round trip drifted by %s", drift)
	}
}
