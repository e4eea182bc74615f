package zodiac

import (
	"github.com/teranos/jyotish/errors"
)

// ValidateTables checks the reference tables for completeness. It is run once
// at engine startup so a missing entry fails before any chart is computed.
func ValidateTables() error {
	elementCounts := make(map[Element]int)
	modalityCounts := make(map[Modality]int)

	for s := Aries; s <= Pisces; s++ {
		info := signs[s]
		if info.name == "" || info.sanskrit == "" {
			return errors.Invariantf("rasi %d has an incomplete reference record", int(s))
		}
		elementCounts[info.element]++
		modalityCounts[info.modality]++
	}
	for e := Fire; e <= Water; e++ {
		if elementCounts[e] != 3 {
			return errors.Invariantf("element %s governs %d rasis, want 3", e, elementCounts[e])
		}
	}
	for m := Movable; m <= Dual; m++ {
		if modalityCounts[m] != 4 {
			return errors.Invariantf("modality %s covers %d rasis, want 4", m, modalityCounts[m])
		}
	}

	for i, name := range nakshatraNames {
		if name == "" {
			return errors.Invariantf("nakshatra %d has no name", i)
		}
	}

	// Sign aspect sets: every sign aspects exactly 3 others,
	// never itself, never an adjacent sign.
	for s := Aries; s <= Pisces; s++ {
		targets := s.Aspects()
		if len(targets) != 3 {
			return errors.Invariantf("rasi %s aspects %d signs, want 3", s, len(targets))
		}
		for _, t := range targets {
			if t == s {
				return errors.Invariantf("rasi %s aspects itself", s)
			}
			if adjacent(s, t) {
				return errors.Invariantf("rasi %s aspects adjacent sign %s", s, t)
			}
		}
	}

	return nil
}
