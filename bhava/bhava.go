// Package bhava computes the 12 houses of a chart: cusp placement under the
// selected house system, occupant assignment, house lords, significations,
// and the traditional house groupings. It also carries the lordship
// analyzer: functional benefic/malefic classification and Yoga Karaka
// lookup per ascendant.
package bhava

import (
	"fmt"
	"strings"

	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// HouseCount is the number of bhavas in a chart.
const HouseCount = 12

// System is a house-division strategy. Only Equal is implemented; new
// systems extend the enum and add a cusp handler, they never fall back
// silently.
type System int

const (
	Equal System = iota
)

func (s System) String() string {
	switch s {
	case Equal:
		return "Equal"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Valid reports whether s is an implemented house system.
func (s System) Valid() bool {
	return s == Equal
}

// ParseSystem resolves a house system by name. Unknown or unimplemented
// systems are a configuration error.
func ParseSystem(name string) (System, error) {
	if strings.EqualFold(name, "Equal") {
		return Equal, nil
	}
	return -1, errors.Configf("unknown house system %q", name)
}

// SandhiOrb is the junction zone around each cusp, in degrees. A placement
// within the orb of a cusp sits in bhava sandhi and is considered weak.
const SandhiOrb = 2.0

// Bhava is one house of a computed chart.
type Bhava struct {
	Number    int     // 1-12
	Cusp      float64 // cusp longitude, [0, 360)
	Sign      zodiac.Sign
	Lord      graha.Graha
	Occupants []graha.Graha // in body enumeration order
}

// Cusps returns the 12 cusp longitudes for an ascendant under the given
// system. Under Equal each house spans exactly 30 degrees from the
// ascendant.
func Cusps(system System, ascendant float64) ([HouseCount]float64, error) {
	var cusps [HouseCount]float64
	if system != Equal {
		return cusps, errors.Configf("house system %s is not implemented", system)
	}
	asc := zodiac.Normalize(ascendant)
	for n := 0; n < HouseCount; n++ {
		cusps[n] = zodiac.Normalize(asc + float64(n)*zodiac.SignSpan)
	}
	return cusps, nil
}

// HouseOf returns the house (1-12) containing a longitude under the equal
// system anchored at the given ascendant.
func HouseOf(longitude, ascendant float64) int {
	offset := zodiac.Normalize(zodiac.Normalize(longitude) - zodiac.Normalize(ascendant))
	return int(offset/zodiac.SignSpan) + 1
}

// Build assigns the 12 houses for an ascendant and a full set of graha
// positions. The cusp partition is verified before occupants are placed; a
// broken partition is an engine defect, not bad input.
func Build(system System, ascendant float64, positions []graha.Position) ([HouseCount]Bhava, error) {
	var houses [HouseCount]Bhava

	cusps, err := Cusps(system, ascendant)
	if err != nil {
		return houses, err
	}

	// Partition invariant: cusp(n+1) = cusp(n) + 30 (mod 360), and every
	// cusp resolves back into its own house.
	for n := 0; n < HouseCount; n++ {
		next := cusps[(n+1)%HouseCount]
		if zodiac.ArcDistance(zodiac.Normalize(cusps[n]+zodiac.SignSpan), next) > 1e-9 {
			return houses, errors.Invariantf(
				"house partition broken: cusp %d at %f, cusp %d at %f", n+1, cusps[n], n+2, next)
		}
		if HouseOf(cusps[n], ascendant) != n+1 {
			return houses, errors.Invariantf(
				"cusp %d at %f does not resolve to its own house", n+1, cusps[n])
		}
	}

	for n := 0; n < HouseCount; n++ {
		sign := zodiac.SignOf(cusps[n])
		houses[n] = Bhava{
			Number: n + 1,
			Cusp:   cusps[n],
			Sign:   sign,
			Lord:   graha.Ruler(sign),
		}
	}

	for _, p := range positions {
		h := HouseOf(p.Longitude, ascendant)
		houses[h-1].Occupants = append(houses[h-1].Occupants, p.Graha)
	}

	return houses, nil
}

// Madhya returns the bhava madhya, the midpoint of the house. Under Equal
// this is 15 degrees past the cusp.
func (b Bhava) Madhya() float64 {
	return zodiac.Normalize(b.Cusp + zodiac.SignSpan/2)
}

// InSandhi reports whether a longitude falls in the junction zone at either
// edge of the house, within SandhiOrb degrees of a cusp.
func (b Bhava) InSandhi(longitude float64) bool {
	fromStart := zodiac.ArcDistance(longitude, b.Cusp)
	fromEnd := zodiac.ArcDistance(longitude, zodiac.Normalize(b.Cusp+zodiac.SignSpan))
	return fromStart < SandhiOrb || fromEnd < SandhiOrb
}

// Occupied reports whether any graha sits in the house.
func (b Bhava) Occupied() bool {
	return len(b.Occupants) > 0
}

func (b Bhava) String() string {
	return fmt.Sprintf("Bhava %d (%s) at %s %.2f°, lord %s",
		b.Number, Name(b.Number), b.Sign, zodiac.DegreeInSign(b.Cusp), b.Lord)
}
