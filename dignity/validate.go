package dignity

import (
	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// ValidateTables verifies that every (graha, rasi) pair resolves to a
// dignity with a score on the 1-9 scale. Run once at engine startup; a
// missing table entry surfaces here instead of mid-chart.
func ValidateTables() error {
	// A synthetic full placement set so ruler lookups always resolve.
	placements := make(map[graha.Graha]graha.Position, graha.Count)
	for _, g := range graha.All() {
		placements[g] = graha.NewPosition(g, 15, false)
	}

	for _, g := range graha.All() {
		for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
			p := graha.NewPosition(g, float64(s)*zodiac.SignSpan+15, false)
			placements[g] = p
			res := Evaluate(p, placements)
			if res.Score < 1 || res.Score > 9 {
				return errors.Invariantf("dignity of %s in %s scored %d, outside [1,9]", g, s, res.Score)
			}
			if res.Status.Score() != res.Score {
				return errors.Invariantf("dignity of %s in %s has inconsistent status and score", g, s)
			}
		}
		placements[g] = graha.NewPosition(g, 15, false)
	}
	return nil
}
