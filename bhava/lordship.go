package bhava

import (
	"fmt"

	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// FunctionalNature classifies what a graha does for a particular ascendant,
// as opposed to its fixed natural classification.
type FunctionalNature int

const (
	FunctionalNeutral FunctionalNature = iota
	FunctionalBenefic
	FunctionalMalefic
	YogaKaraka
)

func (n FunctionalNature) String() string {
	switch n {
	case FunctionalBenefic:
		return "Benefic"
	case FunctionalMalefic:
		return "Malefic"
	case FunctionalNeutral:
		return "Neutral"
	case YogaKaraka:
		return "Yoga Karaka"
	}
	return fmt.Sprintf("FunctionalNature(%d)", int(n))
}

// Yoga Karakas: the grahas that rule both a kendra and a trikona for an
// ascendant. Only six ascendants produce one.
var yogaKarakas = map[zodiac.Sign]graha.Graha{
	zodiac.Taurus:    graha.Saturn, // 9th and 10th lord
	zodiac.Cancer:    graha.Mars,   // 5th and 10th lord
	zodiac.Leo:       graha.Mars,   // 4th and 9th lord
	zodiac.Libra:     graha.Saturn, // 4th and 5th lord
	zodiac.Capricorn: graha.Venus,  // 5th and 10th lord
	zodiac.Aquarius:  graha.Venus,  // 4th and 9th lord
}

// YogaKarakaFor returns the Yoga Karaka graha for an ascendant, if one
// exists.
func YogaKarakaFor(ascendant zodiac.Sign) (graha.Graha, bool) {
	g, ok := yogaKarakas[ascendant]
	return g, ok
}

// SignOfHouse returns the rasi occupying house n for an ascendant sign.
func SignOfHouse(ascendant zodiac.Sign, n int) zodiac.Sign {
	return zodiac.Sign((int(ascendant) + n - 1) % zodiac.SignCount)
}

// HousesRuledBy returns the houses (1-12) whose signs g rules for an
// ascendant, in house order. Empty for the nodes.
func HousesRuledBy(ascendant zodiac.Sign, g graha.Graha) []int {
	var ruled []int
	for n := 1; n <= HouseCount; n++ {
		if graha.Ruler(SignOfHouse(ascendant, n)) == g {
			ruled = append(ruled, n)
		}
	}
	return ruled
}

// functionalNatures is the fixed classification table keyed by ascendant,
// built once at load from the precedence rules in classify. Lookups at chart
// time never re-derive it.
var functionalNatures = buildFunctionalNatures()

func buildFunctionalNatures() map[zodiac.Sign]map[graha.Graha]FunctionalNature {
	table := make(map[zodiac.Sign]map[graha.Graha]FunctionalNature, zodiac.SignCount)
	for asc := zodiac.Aries; asc <= zodiac.Pisces; asc++ {
		row := make(map[graha.Graha]FunctionalNature, graha.Count)
		for _, g := range graha.All() {
			row[g] = classify(asc, g)
		}
		table[asc] = row
	}
	return table
}

// classify resolves one (ascendant, graha) cell. Precedence for conflicting
// rulership, after Parashara: when a graha rules both an auspicious house
// (kendra or trikona) and a dusthana, the house holding its moolatrikona
// sign decides its nature.
func classify(ascendant zodiac.Sign, g graha.Graha) FunctionalNature {
	if g.IsNode() {
		// The nodes rule nothing; functionally they act as malefics.
		return FunctionalMalefic
	}
	if yk, ok := yogaKarakas[ascendant]; ok && yk == g {
		return YogaKaraka
	}

	ruled := HousesRuledBy(ascendant, g)
	rulesAuspicious := false
	rulesDusthana := false
	for _, n := range ruled {
		if IsKendra(n) || IsTrikona(n) {
			rulesAuspicious = true
		}
		if IsDusthana(n) {
			rulesDusthana = true
		}
	}

	switch {
	case rulesAuspicious && rulesDusthana:
		mt, ok := g.Moolatrikona()
		if !ok {
			return FunctionalMalefic
		}
		for _, n := range ruled {
			if SignOfHouse(ascendant, n) != mt.Sign {
				continue
			}
			if IsKendra(n) || IsTrikona(n) {
				return FunctionalBenefic
			}
		}
		return FunctionalMalefic
	case rulesAuspicious:
		return FunctionalBenefic
	case rulesDusthana:
		return FunctionalMalefic
	}
	return FunctionalNeutral
}

// FunctionalNatureOf returns the functional classification of g for charts
// with the given ascendant sign.
func FunctionalNatureOf(ascendant zodiac.Sign, g graha.Graha) FunctionalNature {
	return functionalNatures[ascendant][g]
}
