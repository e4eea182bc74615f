package bhava

import (
	"testing"

	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

func TestSignOfHouse(t *testing.T) {
	tests := []struct {
		asc  zodiac.Sign
		n    int
		want zodiac.Sign
	}{
		{zodiac.Aries, 1, zodiac.Aries},
		{zodiac.Aries, 12, zodiac.Pisces},
		{zodiac.Cancer, 5, zodiac.Scorpio},
		{zodiac.Pisces, 2, zodiac.Aries},
	}
	for _, tt := range tests {
		if got := SignOfHouse(tt.asc, tt.n); got != tt.want {
			t.Errorf("SignOfHouse(%v, %d) = %v, want %v", tt.asc, tt.n, got, tt.want)
		}
	}
}

func TestHousesRuledBy(t *testing.T) {
	tests := []struct {
		asc   zodiac.Sign
		graha graha.Graha
		want  []int
	}{
		{zodiac.Aries, graha.Mars, []int{1, 8}},
		{zodiac.Aries, graha.Sun, []int{5}},
		{zodiac.Taurus, graha.Saturn, []int{9, 10}},
		{zodiac.Aries, graha.Rahu, nil},
	}
	for _, tt := range tests {
		got := HousesRuledBy(tt.asc, tt.graha)
		if len(got) != len(tt.want) {
			t.Fatalf("HousesRuledBy(%v, %v) = %v, want %v", tt.asc, tt.graha, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("HousesRuledBy(%v, %v) = %v, want %v", tt.asc, tt.graha, got, tt.want)
			}
		}
	}
}

func TestYogaKarakaFor(t *testing.T) {
	tests := []struct {
		asc    zodiac.Sign
		want   graha.Graha
		exists bool
	}{
		{zodiac.Taurus, graha.Saturn, true},
		{zodiac.Libra, graha.Saturn, true},
		{zodiac.Cancer, graha.Mars, true},
		{zodiac.Leo, graha.Mars, true},
		{zodiac.Capricorn, graha.Venus, true},
		{zodiac.Aquarius, graha.Venus, true},
		{zodiac.Aries, -1, false},
		{zodiac.Gemini, -1, false},
	}
	for _, tt := range tests {
		got, ok := YogaKarakaFor(tt.asc)
		if ok != tt.exists {
			t.Errorf("YogaKarakaFor(%v) exists = %v, want %v", tt.asc, ok, tt.exists)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("YogaKarakaFor(%v) = %v, want %v", tt.asc, got, tt.want)
		}
	}
}

func TestFunctionalNatureOf(t *testing.T) {
	tests := []struct {
		name string
		asc  zodiac.Sign
		g    graha.Graha
		want FunctionalNature
	}{
		// Lagna lord with a dusthana conflict: Mars rules 1 and 8 for
		// Aries, moolatrikona Aries sits in the 1st, so benefic.
		{"Aries Mars", zodiac.Aries, graha.Mars, FunctionalBenefic},
		// Pure trikona lord.
		{"Aries Sun", zodiac.Aries, graha.Sun, FunctionalBenefic},
		// Rules 3 and 6 only.
		{"Aries Mercury", zodiac.Aries, graha.Mercury, FunctionalMalefic},
		// Jupiter rules 9 and 12; moolatrikona Sagittarius is the 9th.
		{"Aries Jupiter", zodiac.Aries, graha.Jupiter, FunctionalBenefic},
		// Saturn rules 8 and 9 for Gemini; moolatrikona Aquarius is the 9th.
		{"Gemini Saturn", zodiac.Gemini, graha.Saturn, FunctionalBenefic},
		// Mars rules 3 and 8 for Virgo, nothing auspicious.
		{"Virgo Mars", zodiac.Virgo, graha.Mars, FunctionalMalefic},
		// Kendra-plus-trikona rulers.
		{"Taurus Saturn", zodiac.Taurus, graha.Saturn, YogaKaraka},
		{"Cancer Mars", zodiac.Cancer, graha.Mars, YogaKaraka},
		{"Aquarius Venus", zodiac.Aquarius, graha.Venus, YogaKaraka},
		// Nodes rule nothing and act as malefics.
		{"Rahu", zodiac.Leo, graha.Rahu, FunctionalMalefic},
		{"Ketu", zodiac.Libra, graha.Ketu, FunctionalMalefic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FunctionalNatureOf(tt.asc, tt.g); got != tt.want {
				t.Errorf("FunctionalNatureOf(%v, %v) = %v, want %v", tt.asc, tt.g, got, tt.want)
			}
		})
	}
}

func TestFunctionalNatureTableComplete(t *testing.T) {
	for asc := zodiac.Aries; asc <= zodiac.Pisces; asc++ {
		row, ok := functionalNatures[asc]
		if !ok {
			t.Fatalf("no functional nature row for ascendant %v", asc)
		}
		for _, g := range graha.All() {
			if _, ok := row[g]; !ok {
				t.Errorf("no functional nature for %v ascendant, %v", asc, g)
			}
		}
	}
}
