package ephem

import (
	"math"

	"github.com/teranos/jyotish/zodiac"
)

// Obliquity returns the mean obliquity of the ecliptic in degrees for a
// Julian day, using the IAU 1980 linear term about epoch J2000. Adequate for
// ascendant geometry over several centuries around the present.
func Obliquity(jd float64) float64 {
	t := (jd - j2000) / 36525
	return 23.4392911 - 0.0130042*t
}

// AscendantLongitude returns the tropical ecliptic longitude of the
// ascendant, in [0, 360), from local sidereal time (hours), geographic
// latitude (degrees), and ecliptic obliquity (degrees).
//
// The formula is the standard horizon-ecliptic intersection:
//
//	λ = atan2(cos θ, -(sin θ · cos ε + tan φ · sin ε))
//
// where θ is the local sidereal angle.
func AscendantLongitude(lstHours, latitude, obliquity float64) float64 {
	theta := lstHours * 15 * math.Pi / 180
	phi := latitude * math.Pi / 180
	eps := obliquity * math.Pi / 180

	lambda := math.Atan2(
		math.Cos(theta),
		-(math.Sin(theta)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)),
	)

	return zodiac.Normalize(lambda * 180 / math.Pi)
}
