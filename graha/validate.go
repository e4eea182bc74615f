package graha

import (
	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/zodiac"
)

// ValidateTables checks the graha reference tables for completeness and
// internal consistency. Run once at engine startup.
func ValidateTables() error {
	for _, g := range All() {
		if grahaNames[g] == "" || sanskritNames[g] == "" {
			return errors.Invariantf("graha %d has an incomplete name record", int(g))
		}

		// Friend and enemy sets must be disjoint and never self-referential.
		for _, f := range naturalFriends[g] {
			if f == g {
				return errors.Invariantf("%s lists itself as a friend", g)
			}
			for _, e := range naturalEnemies[g] {
				if f == e {
					return errors.Invariantf("%s lists %s as both friend and enemy", g, f)
				}
			}
		}
		for _, e := range naturalEnemies[g] {
			if e == g {
				return errors.Invariantf("%s lists itself as an enemy", g)
			}
		}

		if g.IsNode() {
			if len(g.OwnSigns()) != 0 {
				return errors.Invariantf("node %s owns signs", g)
			}
			if _, ok := g.Exaltation(); ok {
				return errors.Invariantf("node %s has an exaltation point", g)
			}
			if _, ok := g.CombustionOrb(); ok {
				return errors.Invariantf("node %s has a combustion orb", g)
			}
			continue
		}

		// Every classical graha except the Sun carries a combustion orb.
		if g != Sun {
			orb, ok := g.CombustionOrb()
			if !ok || orb <= 0 {
				return errors.Invariantf("%s has no combustion orb", g)
			}
		}

		exalt, hasExalt := g.Exaltation()
		debil, hasDebil := g.Debilitation()
		if !hasExalt || !hasDebil {
			return errors.Invariantf("%s is missing exaltation or debilitation", g)
		}
		// Debilitation is the opposite sign at the same degree.
		if (int(exalt.Sign)+6)%zodiac.SignCount != int(debil.Sign) || exalt.Degree != debil.Degree {
			return errors.Invariantf("%s debilitation is not opposite its exaltation", g)
		}

		mt, ok := g.Moolatrikona()
		if !ok {
			return errors.Invariantf("%s has no moolatrikona range", g)
		}
		if mt.From < 0 || mt.To > 30 || mt.From >= mt.To {
			return errors.Invariantf("%s has an invalid moolatrikona range [%v, %v]", g, mt.From, mt.To)
		}
		if !g.Owns(mt.Sign) && g != Moon {
			// The Moon's moolatrikona (Taurus) is the one classical
			// exception to moolatrikona-in-own-sign.
			return errors.Invariantf("%s moolatrikona sign %s is not an owned sign", g, mt.Sign)
		}
	}

	// Every rasi resolves to exactly one ruler, and rulership counts match
	// the classical scheme (luminaries one sign each, others two).
	ownCounts := make(map[Graha]int)
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		r := Ruler(s)
		if !r.Valid() || r.IsNode() {
			return errors.Invariantf("rasi %s has invalid ruler %s", s, r)
		}
		ownCounts[r]++
	}
	for g := Sun; g <= Saturn; g++ {
		want := 2
		if g == Sun || g == Moon {
			want = 1
		}
		if ownCounts[g] != want {
			return errors.Invariantf("%s rules %d signs, want %d", g, ownCounts[g], want)
		}
	}

	return nil
}
