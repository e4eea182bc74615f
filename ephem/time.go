package ephem

import (
	"math"
	"time"

	"github.com/teranos/jyotish/zodiac"
)

// j2000 is the Julian day of the standard epoch J2000.0
// (2000-01-01 12:00 TT, treated as UT here).
const j2000 = 2451545.0

// JulianDay converts an instant to a Julian day number. The input is
// normalized to UTC first; the Gregorian correction applies throughout the
// range this engine cares about.
func JulianDay(instant time.Time) float64 {
	utc := instant.UTC()

	year := utc.Year()
	month := int(utc.Month())
	day := utc.Day()

	if month <= 2 {
		year--
		month += 12
	}

	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + b - 1524.5

	seconds := float64(utc.Hour())*3600 +
		float64(utc.Minute())*60 +
		float64(utc.Second()) +
		float64(utc.Nanosecond())/1e9
	jd += seconds / 86400

	return jd
}

// GMST returns the Greenwich mean sidereal time for a Julian day, as an
// angle in [0, 360).
func GMST(jd float64) float64 {
	t := (jd - j2000) / 36525
	gmst := 280.46061837 +
		360.98564736629*(jd-j2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return zodiac.Normalize(gmst)
}

// LocalSiderealTime returns the local sidereal time in hours [0, 24) for an
// instant at the given geographic longitude (degrees, positive east).
func LocalSiderealTime(instant time.Time, geoLongitude float64) float64 {
	lstDegrees := zodiac.Normalize(GMST(JulianDay(instant)) + geoLongitude)
	return lstDegrees / 15
}
