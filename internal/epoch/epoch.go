// Package epoch converts calendar timestamps to the time scales the
// deep-space model works in: Julian date, days since 1950 Jan 0.0 UT, and
// Greenwich mean sidereal time.
package epoch

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/deeporbit/internal/orbit"
)

// jd1950 is the Julian date of 1950 Jan 0.0 UT, the zero point of the
// deep-space time scale.
const jd1950 = 2433281.5

// Resolved holds the time-scale conversions for one epoch.
type Resolved struct {
	JulianDate float64
	Days1950   float64 // days since 1950 Jan 0.0 UT
	ThetaG     float64 // Greenwich mean sidereal time, rad
}

// Resolve converts a UTC timestamp. The sidereal formula is calibrated for
// 1957 through 2056; timestamps outside that window fail with
// [orbit.ErrEpochUnresolved].
func Resolve(t time.Time) (Resolved, error) {
	t = t.UTC()
	if y := t.Year(); y < 1957 || y > 2056 {
		return Resolved{}, fmt.Errorf("%w: year %d not in [1957, 2056]", orbit.ErrEpochUnresolved, y)
	}
	jd := JulianDate(t)
	ds50 := jd - jd1950
	return Resolved{
		JulianDate: jd,
		Days1950:   ds50,
		ThetaG:     orbit.Mod2Pi(6.3003880987*ds50 + 1.72944494),
	}, nil
}

// JulianDate converts a UTC time to Julian date using the standard
// astronomical algorithm (Meeus, Astronomical Algorithms ch. 7).
func JulianDate(t time.Time) float64 {
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Jan/Feb count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}
