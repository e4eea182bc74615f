package graha

import (
	"testing"

	"github.com/teranos/jyotish/zodiac"
)

func TestValidateTables(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("ValidateTables() = %v", err)
	}
}

func TestNaturalRelation(t *testing.T) {
	tests := []struct {
		g, other Graha
		want     Relation
	}{
		{Sun, Moon, Friend},
		{Sun, Mercury, Neutral},
		{Sun, Venus, Enemy},
		{Moon, Saturn, Neutral},
		{Saturn, Moon, Enemy}, // asymmetric with the row above
		{Venus, Saturn, Friend},
		{Jupiter, Venus, Enemy},
		{Rahu, Saturn, Friend},
		{Ketu, Mercury, Enemy},
		{Mars, Mars, Neutral}, // self is neutral by definition
	}
	for _, tt := range tests {
		if got := NaturalRelation(tt.g, tt.other); got != tt.want {
			t.Errorf("NaturalRelation(%v, %v) = %v, want %v", tt.g, tt.other, got, tt.want)
		}
	}
}

func TestRuler(t *testing.T) {
	tests := []struct {
		sign zodiac.Sign
		want Graha
	}{
		{zodiac.Aries, Mars},
		{zodiac.Cancer, Moon},
		{zodiac.Leo, Sun},
		{zodiac.Virgo, Mercury},
		{zodiac.Scorpio, Mars},
		{zodiac.Aquarius, Saturn},
		{zodiac.Pisces, Jupiter},
	}
	for _, tt := range tests {
		if got := Ruler(tt.sign); got != tt.want {
			t.Errorf("Ruler(%v) = %v, want %v", tt.sign, got, tt.want)
		}
	}
}

func TestOwnSigns(t *testing.T) {
	tests := []struct {
		graha Graha
		want  []zodiac.Sign
	}{
		{Sun, []zodiac.Sign{zodiac.Leo}},
		{Mars, []zodiac.Sign{zodiac.Aries, zodiac.Scorpio}},
		{Rahu, nil},
		{Ketu, nil},
	}
	for _, tt := range tests {
		got := tt.graha.OwnSigns()
		if len(got) != len(tt.want) {
			t.Fatalf("%v.OwnSigns() = %v, want %v", tt.graha, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.OwnSigns() = %v, want %v", tt.graha, got, tt.want)
			}
		}
	}
}

func TestInMoolatrikona(t *testing.T) {
	tests := []struct {
		name   string
		graha  Graha
		sign   zodiac.Sign
		degree float64
		want   bool
	}{
		{"Sun in Leo 10", Sun, zodiac.Leo, 10, true},
		{"Sun in Leo 25 past range", Sun, zodiac.Leo, 25, false},
		{"Sun in Aries", Sun, zodiac.Aries, 10, false},
		{"Mercury Virgo 18", Mercury, zodiac.Virgo, 18, true},
		{"Mercury Virgo 15 below range", Mercury, zodiac.Virgo, 15, false},
		{"Moon Taurus 20", Moon, zodiac.Taurus, 20, true},
		{"Moon Taurus 2 below range", Moon, zodiac.Taurus, 2, false},
		{"Rahu has none", Rahu, zodiac.Gemini, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.graha.InMoolatrikona(tt.sign, tt.degree); got != tt.want {
				t.Errorf("InMoolatrikona(%v, %v) = %v, want %v", tt.sign, tt.degree, got, tt.want)
			}
		})
	}
}

func TestCombustionOrb(t *testing.T) {
	for _, g := range []Graha{Sun, Rahu, Ketu} {
		if _, ok := g.CombustionOrb(); ok {
			t.Errorf("%v should have no combustion orb", g)
		}
	}
	orb, ok := Mars.CombustionOrb()
	if !ok || orb != 17 {
		t.Errorf("Mars.CombustionOrb() = %v, %v, want 17, true", orb, ok)
	}
}

func TestNewPosition(t *testing.T) {
	p := NewPosition(Jupiter, 125.5, false)
	if p.Sign != zodiac.Leo {
		t.Errorf("Sign = %v, want Leo", p.Sign)
	}
	if p.Degree != 5.5 {
		t.Errorf("Degree = %v, want 5.5", p.Degree)
	}
	if p.Retrograde {
		t.Error("Retrograde = true, want false")
	}
}

func TestNewPositionNormalizes(t *testing.T) {
	p := NewPosition(Venus, -30, false)
	if p.Longitude != 330 {
		t.Errorf("Longitude = %v, want 330", p.Longitude)
	}
	if p.Sign != zodiac.Pisces {
		t.Errorf("Sign = %v, want Pisces", p.Sign)
	}
}

func TestNodesAlwaysRetrograde(t *testing.T) {
	for _, g := range []Graha{Rahu, Ketu} {
		p := NewPosition(g, 100, false)
		if !p.Retrograde {
			t.Errorf("%v position should be retrograde by convention", g)
		}
	}
}

func TestNakshatraLord(t *testing.T) {
	tests := []struct {
		nakshatra zodiac.Nakshatra
		want      Graha
	}{
		{zodiac.Ashwini, Ketu},
		{zodiac.Bharani, Venus},
		{zodiac.Krittika, Sun},
		{zodiac.Magha, Ketu}, // cycle restarts every 9
		{zodiac.Mula, Ketu},
		{zodiac.Revati, Mercury},
	}
	for _, tt := range tests {
		if got := NakshatraLord(tt.nakshatra); got != tt.want {
			t.Errorf("NakshatraLord(%v) = %v, want %v", tt.nakshatra, got, tt.want)
		}
	}
}

func TestParseGraha(t *testing.T) {
	g, ok := ParseGraha("Saturn")
	if !ok || g != Saturn {
		t.Errorf("ParseGraha(Saturn) = %v, %v", g, ok)
	}
	if _, ok := ParseGraha("Pluto"); ok {
		t.Error("ParseGraha(Pluto) should fail")
	}
}
