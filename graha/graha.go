// Package graha models the nine bodies of the Vedic chart and their static
// reference data: natural friendships, sign rulership, exaltation and
// debilitation, moolatrikona ranges, and combustion orbs.
//
// The tables are process-wide immutable state. ValidateTables runs once at
// startup and rejects any incomplete entry before a chart is computed.
package graha

import (
	"fmt"

	"github.com/teranos/jyotish/zodiac"
)

// Graha is one of the 9 bodies, in traditional enumeration order.
type Graha int

const (
	Sun Graha = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// Count is the number of grahas.
const Count = 9

// All returns the grahas in enumeration order.
func All() []Graha {
	return []Graha{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
}

var grahaNames = [Count]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

var sanskritNames = [Count]string{
	"Surya", "Chandra", "Mangala", "Budha", "Guru", "Shukra", "Shani", "Rahu", "Ketu",
}

func (g Graha) String() string {
	if g < 0 || g >= Count {
		return fmt.Sprintf("Graha(%d)", int(g))
	}
	return grahaNames[g]
}

// Sanskrit returns the traditional name of the graha.
func (g Graha) Sanskrit() string {
	return sanskritNames[g]
}

// Valid reports whether g is a real graha index.
func (g Graha) Valid() bool {
	return g >= Sun && g <= Ketu
}

// IsNode reports whether g is one of the lunar nodes. The nodes are shadow
// bodies: they own no signs, are never combust, and move retrograde by
// convention.
func (g Graha) IsNode() bool {
	return g == Rahu || g == Ketu
}

// ParseGraha resolves a graha by its English name.
func ParseGraha(name string) (Graha, bool) {
	for g := Sun; g <= Ketu; g++ {
		if grahaNames[g] == name {
			return g, true
		}
	}
	return -1, false
}

// NaturallyBenefic reports the graha's static natural classification.
// Moon and Mercury are conditionally benefic; this is their default, and the
// chart-level refinement (waxing Moon, Mercury's associations) overrides it.
func (g Graha) NaturallyBenefic() bool {
	switch g {
	case Moon, Mercury, Jupiter, Venus:
		return true
	}
	return false
}

// Significations returns the graha's karakatva, its natural domains.
func (g Graha) Significations() []string {
	return significations[g]
}

var significations = map[Graha][]string{
	Sun:     {"Soul", "Father", "Authority", "Health"},
	Moon:    {"Mind", "Mother", "Emotions", "Public"},
	Mars:    {"Energy", "Siblings", "Courage", "Conflict"},
	Mercury: {"Communication", "Intelligence", "Trade", "Education"},
	Jupiter: {"Wisdom", "Children", "Wealth", "Teachers"},
	Venus:   {"Marriage", "Arts", "Luxury", "Vehicles"},
	Saturn:  {"Longevity", "Discipline", "Sorrow", "Delay"},
	Rahu:    {"Illusion", "Foreign", "Obsession", "Sudden events"},
	Ketu:    {"Spirituality", "Liberation", "Past karma", "Separation"},
}

// NakshatraLord returns the Vimshottari lord of a nakshatra. The lords repeat
// in a fixed cycle of nine starting from Ketu at Ashwini.
func NakshatraLord(n zodiac.Nakshatra) Graha {
	return vimshottariCycle[int(n)%len(vimshottariCycle)]
}

var vimshottariCycle = [9]Graha{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}
