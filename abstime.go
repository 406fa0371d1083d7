package orekit

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// JulianDayJ2000 is the Julian day of the J2000 reference epoch.
	JulianDayJ2000 = 2451545.0
	// JulianDayMJD is the Julian day of the modified Julian day origin.
	JulianDayMJD = 2400000.5
	// JulianDayCNES1950 is the Julian day of the CNES 1950 reference epoch.
	JulianDayCNES1950 = 2433282.5
	// SecondsPerDay is the number of seconds in a Julian day.
	SecondsPerDay = 86400.0
)

// AbsoluteDate is an immutable instant on a continuous timeline, stored as
// elapsed seconds since the J2000 epoch. Dates built from different epoch
// references but denoting the same physical instant compare equal and
// subtract to zero. Leap seconds are not modeled: the timeline is uniform.
type AbsoluteDate struct {
	secs float64
}

// Reference epochs. All of them resolve onto the same J2000-based timeline.
var (
	J2000Epoch          = AbsoluteDate{0}
	ModifiedJulianEpoch = AbsoluteDate{(JulianDayMJD - JulianDayJ2000) * SecondsPerDay}
	CNES1950Epoch       = AbsoluteDate{(JulianDayCNES1950 - JulianDayJ2000) * SecondsPerDay}
)

// NewAbsoluteDate returns the date at `elapsed` seconds past the given epoch.
func NewAbsoluteDate(epoch AbsoluteDate, elapsed float64) AbsoluteDate {
	return AbsoluteDate{epoch.secs + elapsed}
}

// DateFromTime converts a time.Time to an AbsoluteDate.
func DateFromTime(t time.Time) AbsoluteDate {
	return AbsoluteDate{(julian.TimeToJD(t.UTC()) - JulianDayJ2000) * SecondsPerDay}
}

// Minus returns the elapsed seconds between this date and the other one.
// Positive when this date is after the other.
func (d AbsoluteDate) Minus(o AbsoluteDate) float64 {
	return d.secs - o.secs
}

// ShiftedBy returns a new date offset by the given number of seconds.
func (d AbsoluteDate) ShiftedBy(dt float64) AbsoluteDate {
	return AbsoluteDate{d.secs + dt}
}

// Compare returns -1, 0 or +1 depending on the ordering of the two dates.
func (d AbsoluteDate) Compare(o AbsoluteDate) int {
	switch {
	case d.secs < o.secs:
		return -1
	case d.secs > o.secs:
		return 1
	default:
		return 0
	}
}

// Before returns whether this date is strictly before the other.
func (d AbsoluteDate) Before(o AbsoluteDate) bool { return d.secs < o.secs }

// After returns whether this date is strictly after the other.
func (d AbsoluteDate) After(o AbsoluteDate) bool { return d.secs > o.secs }

// Equals returns whether both dates denote the same instant.
func (d AbsoluteDate) Equals(o AbsoluteDate) bool { return d.secs == o.secs }

// JD returns the Julian day of this date.
func (d AbsoluteDate) JD() float64 {
	return JulianDayJ2000 + d.secs/SecondsPerDay
}

// MJD returns the modified Julian day of this date.
func (d AbsoluteDate) MJD() float64 {
	return d.JD() - JulianDayMJD
}

// Time converts this date back to a time.Time in UTC.
func (d AbsoluteDate) Time() time.Time {
	return julian.JDToTime(d.JD()).UTC()
}

func (d AbsoluteDate) String() string {
	return fmt.Sprintf("%s (J2000 %+.3fs)", d.Time().Format(time.RFC3339), d.secs)
}
