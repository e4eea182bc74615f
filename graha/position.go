package graha

import (
	"fmt"

	"github.com/teranos/jyotish/zodiac"
)

// Position is one graha's sidereal placement with all derived fields.
// Derived fields are computed from the normalized longitude at construction
// and never drift from it.
type Position struct {
	Graha      Graha
	Longitude  float64 // sidereal, normalized to [0, 360)
	Sign       zodiac.Sign
	Degree     float64 // within the occupied rasi, [0, 30)
	Nakshatra  zodiac.Nakshatra
	Pada       int // 1-4
	Retrograde bool
}

// NewPosition builds a Position from a sidereal longitude. The longitude is
// normalized first so every derived field agrees with it. Nodes are always
// retrograde regardless of the provider's flag, per their motion convention.
func NewPosition(g Graha, siderealLongitude float64, retrograde bool) Position {
	lon := zodiac.Normalize(siderealLongitude)
	if g.IsNode() {
		retrograde = true
	}
	return Position{
		Graha:      g,
		Longitude:  lon,
		Sign:       zodiac.SignOf(lon),
		Degree:     zodiac.DegreeInSign(lon),
		Nakshatra:  zodiac.NakshatraOf(lon),
		Pada:       zodiac.PadaOf(lon),
		Retrograde: retrograde,
	}
}

// NakshatraLord returns the Vimshottari lord of the occupied nakshatra.
func (p Position) NakshatraLord() Graha {
	return NakshatraLord(p.Nakshatra)
}

func (p Position) String() string {
	motion := ""
	if p.Retrograde {
		motion = " (R)"
	}
	return fmt.Sprintf("%s at %.2f° %s%s (%s pada %d)",
		p.Graha, p.Degree, p.Sign, motion, p.Nakshatra, p.Pada)
}
