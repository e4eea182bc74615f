// Package ephem handles the astronomical side of chart construction: time
// scale conversions, the tropical-to-sidereal correction (ayanamsa),
// ascendant geometry, and the position provider boundary.
//
// The engine never talks to an ephemeris directly. It consumes the Provider
// interface, so a precision ephemeris and the built-in mean-element table are
// interchangeable.
package ephem

import (
	"fmt"
	"strings"
	"time"

	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/zodiac"
)

// Ayanamsa is a named sidereal correction system.
type Ayanamsa int

const (
	Lahiri Ayanamsa = iota
	Raman
	Krishnamurti
)

var ayanamsaNames = map[Ayanamsa]string{
	Lahiri:       "Lahiri",
	Raman:        "Raman",
	Krishnamurti: "Krishnamurti",
}

// Ayanamsa offsets in degrees at epoch J2000.0. The offset grows with the
// general precession of the equinoxes, 50.29 arcseconds per year.
var ayanamsaBase = map[Ayanamsa]float64{
	Lahiri:       23.85,
	Raman:        22.50,
	Krishnamurti: 23.77,
}

const precessionRate = 50.29 / 3600 // degrees per year

func (a Ayanamsa) String() string {
	if name, ok := ayanamsaNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Ayanamsa(%d)", int(a))
}

// Valid reports whether a is a known ayanamsa system.
func (a Ayanamsa) Valid() bool {
	_, ok := ayanamsaBase[a]
	return ok
}

// ParseAyanamsa resolves an ayanamsa system by name. Unknown names are a
// configuration error, never a silent default.
func ParseAyanamsa(name string) (Ayanamsa, error) {
	for a, n := range ayanamsaNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	return -1, errors.Configf("unknown ayanamsa %q", name)
}

// OffsetAt returns the ayanamsa offset in degrees for the given instant:
// the J2000 base value advanced by annual precession.
func (a Ayanamsa) OffsetAt(instant time.Time) float64 {
	yearsFromJ2000 := (JulianDay(instant) - j2000) / 365.25
	return ayanamsaBase[a] + yearsFromJ2000*precessionRate
}

// ToSidereal converts a tropical ecliptic longitude to the sidereal frame of
// the given ayanamsa, normalized to [0, 360).
func (a Ayanamsa) ToSidereal(tropicalLongitude float64, instant time.Time) float64 {
	return zodiac.Normalize(tropicalLongitude - a.OffsetAt(instant))
}
