// Package drishti computes the two aspect systems of the chart. Graha
// drishti is house-based: every body casts a full aspect on the 7th house
// from itself, and Mars, Jupiter and Saturn cast additional special aspects.
// Rasi drishti is the independent sign-to-sign rule carried by the zodiac
// package; here it is lifted onto the chart's sign pairs.
//
// Aspects are house-counted with no degree orb, per Parashara. Combustion is
// the only degree-based proximity rule in the engine and lives elsewhere.
package drishti

import (
	"fmt"
	"sort"

	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// Kind distinguishes the universal 7th-house aspect from a graha's special
// aspects.
type Kind int

const (
	Full Kind = iota
	Special
)

func (k Kind) String() string {
	switch k {
	case Full:
		return "Full"
	case Special:
		return "Special"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Special aspect distances, counted inclusively from the occupied house.
// Every graha also casts the full 7th. The nodes cast only the 7th.
var specialDistances = map[graha.Graha][]int{
	graha.Mars:    {4, 8},
	graha.Jupiter: {5, 9},
	graha.Saturn:  {3, 10},
}

// HouseAspect is one graha's aspect on a house.
type HouseAspect struct {
	Source      graha.Graha
	SourceHouse int
	TargetHouse int
	Kind        Kind
	Distance    int // inclusive house count that produced the aspect
}

// PlanetAspect is one graha's aspect on another, derived from the house
// aspects and the target's placement.
type PlanetAspect struct {
	Source   graha.Graha
	Target   graha.Graha
	Kind     Kind
	Distance int
}

// targetHouse walks distance houses forward from h, counting h itself as 1.
func targetHouse(h, distance int) int {
	return (h-1+distance-1)%bhava.HouseCount + 1
}

// HouseAspects returns every graha-on-house aspect for a set of placements
// (graha to occupied house, 1-12). When a special aspect lands on the same
// house as the full aspect it replaces it; each (source, house) pair appears
// at most once.
func HouseAspects(placements map[graha.Graha]int) []HouseAspect {
	var aspects []HouseAspect
	for _, g := range graha.All() {
		h, ok := placements[g]
		if !ok {
			continue
		}

		seen := make(map[int]bool, 3)
		for _, d := range specialDistances[g] {
			t := targetHouse(h, d)
			aspects = append(aspects, HouseAspect{
				Source: g, SourceHouse: h, TargetHouse: t,
				Kind: Special, Distance: d,
			})
			seen[t] = true
		}
		if t := targetHouse(h, 7); !seen[t] {
			aspects = append(aspects, HouseAspect{
				Source: g, SourceHouse: h, TargetHouse: t,
				Kind: Full, Distance: 7,
			})
		}
	}

	sort.SliceStable(aspects, func(i, j int) bool {
		if aspects[i].Source != aspects[j].Source {
			return aspects[i].Source < aspects[j].Source
		}
		return aspects[i].Distance < aspects[j].Distance
	})
	return aspects
}

// PlanetAspects derives graha-on-graha aspects: source aspects target when
// the target occupies an aspected house. A graha never aspects itself.
func PlanetAspects(placements map[graha.Graha]int) []PlanetAspect {
	houseAspects := HouseAspects(placements)

	var aspects []PlanetAspect
	for _, ha := range houseAspects {
		for _, target := range graha.All() {
			if target == ha.Source {
				continue
			}
			if placements[target] == ha.TargetHouse {
				aspects = append(aspects, PlanetAspect{
					Source:   ha.Source,
					Target:   target,
					Kind:     ha.Kind,
					Distance: ha.Distance,
				})
			}
		}
	}
	return aspects
}

// Mutual reports whether a and b aspect each other in the given aspect set.
func Mutual(aspects []PlanetAspect, a, b graha.Graha) bool {
	aToB, bToA := false, false
	for _, asp := range aspects {
		if asp.Source == a && asp.Target == b {
			aToB = true
		}
		if asp.Source == b && asp.Target == a {
			bToA = true
		}
	}
	return aToB && bToA
}

// Received filters the aspects landing on one house.
func Received(aspects []HouseAspect, house int) []HouseAspect {
	var onHouse []HouseAspect
	for _, a := range aspects {
		if a.TargetHouse == house {
			onHouse = append(onHouse, a)
		}
	}
	return onHouse
}

// SignAspect is one rasi's sign aspect on another, independent of occupancy.
type SignAspect struct {
	Source zodiac.Sign
	Target zodiac.Sign
}

// SignAspects enumerates the full rasi drishti relation over all sign pairs.
// The relation is static; it is restated per chart only so the chart's
// aspect set is complete in one place.
func SignAspects() []SignAspect {
	var aspects []SignAspect
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		for _, t := range s.Aspects() {
			aspects = append(aspects, SignAspect{Source: s, Target: t})
		}
	}
	return aspects
}
