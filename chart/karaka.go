package chart

import (
	"fmt"
	"sort"

	"github.com/teranos/jyotish/graha"
)

// Karaka is one of the eight chara karakas, the variable significators
// assigned by degree rank at birth. Order follows the assignment rank:
// Atma Karaka takes the highest effective degree, Dara Karaka the lowest.
type Karaka int

const (
	AtmaKaraka Karaka = iota
	AmatyaKaraka
	BhratriKaraka
	MatriKaraka
	PitruKaraka
	PutraKaraka
	GnatiKaraka
	DaraKaraka
)

// KarakaCount is the number of chara karakas assigned per chart.
const KarakaCount = 8

type karakaInfo struct {
	name         string
	abbreviation string
	signifies    []string
}

var karakas = [KarakaCount]karakaInfo{
	AtmaKaraka:    {"Atma Karaka", "AK", []string{"Soul", "Self", "Life purpose"}},
	AmatyaKaraka:  {"Amatya Karaka", "AmK", []string{"Career", "Advisors", "Authority"}},
	BhratriKaraka: {"Bhratri Karaka", "BK", []string{"Siblings", "Courage", "Communication"}},
	MatriKaraka:   {"Matri Karaka", "MK", []string{"Mother", "Home", "Comfort"}},
	PitruKaraka:   {"Pitru Karaka", "PiK", []string{"Father", "Dharma", "Fortune"}},
	PutraKaraka:   {"Putra Karaka", "PK", []string{"Children", "Creativity", "Intelligence"}},
	GnatiKaraka:   {"Gnati Karaka", "GK", []string{"Obstacles", "Disease", "Competition"}},
	DaraKaraka:    {"Dara Karaka", "DK", []string{"Spouse", "Partnerships"}},
}

func (k Karaka) String() string {
	if k < 0 || k >= KarakaCount {
		return fmt.Sprintf("Karaka(%d)", int(k))
	}
	return karakas[k].name
}

// Abbreviation returns the conventional short form (AK, AmK, ...).
func (k Karaka) Abbreviation() string {
	if k < 0 || k >= KarakaCount {
		return fmt.Sprintf("Karaka(%d)", int(k))
	}
	return karakas[k].abbreviation
}

// Significations returns the areas of life the karaka stands for.
func (k Karaka) Significations() []string {
	if k < 0 || k >= KarakaCount {
		return nil
	}
	return karakas[k].signifies
}

// KarakaAssignment binds one karaka to the graha holding it in a chart.
type KarakaAssignment struct {
	Karaka Karaka
	Graha  graha.Graha
	// Degree is the effective degree the ranking used: degree in sign,
	// with Rahu counted backwards from the end of its sign.
	Degree float64
}

// computeKarakas ranks the eight karaka-eligible bodies by effective degree
// in sign, descending. Rahu ranks by 30 minus its degree, the node moving
// backwards through the sign; Ketu holds no karaka. Ties keep body
// enumeration order.
func computeKarakas(byGraha map[graha.Graha]graha.Position) [KarakaCount]KarakaAssignment {
	type ranked struct {
		graha  graha.Graha
		degree float64
	}

	eligible := make([]ranked, 0, KarakaCount)
	for _, g := range graha.All() {
		if g == graha.Ketu {
			continue
		}
		p := byGraha[g]
		degree := p.Degree
		if g == graha.Rahu {
			degree = 30 - p.Degree
		}
		eligible = append(eligible, ranked{graha: g, degree: degree})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].degree > eligible[j].degree
	})

	var assignments [KarakaCount]KarakaAssignment
	for i, r := range eligible {
		assignments[i] = KarakaAssignment{
			Karaka: Karaka(i),
			Graha:  r.graha,
			Degree: r.degree,
		}
	}
	return assignments
}

// Karakas returns the eight chara karaka assignments in karaka order,
// Atma Karaka first.
func (c *Chart) Karakas() [KarakaCount]KarakaAssignment {
	return c.karakas
}

// KarakaOf returns the karaka held by a graha. Ketu holds none.
func (c *Chart) KarakaOf(g graha.Graha) (Karaka, bool) {
	for _, a := range c.karakas {
		if a.Graha == g {
			return a.Karaka, true
		}
	}
	return -1, false
}
