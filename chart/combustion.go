package chart

import (
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// Combust reports whether a graha is combust: within its combustion orb of
// the Sun by shortest arc. The Sun and the nodes never combust. This is the
// one degree-based proximity rule in the engine; aspects are house-counted.
func Combust(p graha.Position, sunLongitude float64) bool {
	orb, ok := p.Graha.CombustionOrb()
	if !ok {
		return false
	}
	return zodiac.ArcDistance(p.Longitude, sunLongitude) < orb
}
