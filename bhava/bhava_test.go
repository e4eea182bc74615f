package bhava

import (
	"math"
	"testing"

	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

func TestParseSystem(t *testing.T) {
	s, err := ParseSystem("Equal")
	if err != nil || s != Equal {
		t.Fatalf("ParseSystem(Equal) = %v, %v", s, err)
	}

	_, err = ParseSystem("Placidus")
	if err == nil {
		t.Fatal("ParseSystem should reject unimplemented systems")
	}
	if !errors.IsConfiguration(err) {
		t.Errorf("want a configuration error, got %v", err)
	}
}

func TestCuspsPartition(t *testing.T) {
	for _, asc := range []float64{0, 17.5, 100.123, 271, 359.9} {
		cusps, err := Cusps(Equal, asc)
		if err != nil {
			t.Fatal(err)
		}
		if cusps[0] != zodiac.Normalize(asc) {
			t.Errorf("cusp(1) = %v, want ascendant %v", cusps[0], asc)
		}
		for n := 0; n < HouseCount; n++ {
			next := cusps[(n+1)%HouseCount]
			span := zodiac.Normalize(next - cusps[n])
			if math.Abs(span-30) > 1e-9 {
				t.Errorf("asc %v: house %d spans %v degrees, want 30", asc, n+1, span)
			}
		}
	}
}

func TestHouseOf(t *testing.T) {
	const asc = 100.0
	tests := []struct {
		lon  float64
		want int
	}{
		{100, 1},
		{129.999, 1},
		{130, 2},
		{280, 7},
		{99.999, 12},
		{70, 12},
	}
	for _, tt := range tests {
		if got := HouseOf(tt.lon, asc); got != tt.want {
			t.Errorf("HouseOf(%v, %v) = %d, want %d", tt.lon, asc, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	// Ascendant at 10° Cancer: house 1 is Cancer ruled by the Moon.
	const asc = 100.0
	positions := []graha.Position{
		graha.NewPosition(graha.Sun, 105, false),    // house 1
		graha.NewPosition(graha.Moon, 131, false),   // house 2
		graha.NewPosition(graha.Mars, 105.5, false), // house 1
		graha.NewPosition(graha.Saturn, 95, true),   // house 12
	}

	houses, err := Build(Equal, asc, positions)
	if err != nil {
		t.Fatal(err)
	}

	if houses[0].Sign != zodiac.Cancer || houses[0].Lord != graha.Moon {
		t.Errorf("house 1 = %v %v, want Cancer ruled by Moon", houses[0].Sign, houses[0].Lord)
	}
	if houses[6].Sign != zodiac.Capricorn || houses[6].Lord != graha.Saturn {
		t.Errorf("house 7 = %v %v, want Capricorn ruled by Saturn", houses[6].Sign, houses[6].Lord)
	}

	// Occupants keep body enumeration order within a house.
	if len(houses[0].Occupants) != 2 ||
		houses[0].Occupants[0] != graha.Sun || houses[0].Occupants[1] != graha.Mars {
		t.Errorf("house 1 occupants = %v, want [Sun Mars]", houses[0].Occupants)
	}
	if len(houses[1].Occupants) != 1 || houses[1].Occupants[0] != graha.Moon {
		t.Errorf("house 2 occupants = %v, want [Moon]", houses[1].Occupants)
	}
	if len(houses[11].Occupants) != 1 || houses[11].Occupants[0] != graha.Saturn {
		t.Errorf("house 12 occupants = %v, want [Saturn]", houses[11].Occupants)
	}
}

func TestBuildUnknownSystem(t *testing.T) {
	_, err := Build(System(9), 100, nil)
	if err == nil || !errors.IsConfiguration(err) {
		t.Errorf("unknown system should be a configuration error, got %v", err)
	}
}

func TestMadhyaAndSandhi(t *testing.T) {
	houses, err := Build(Equal, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	b := houses[0]

	if got := b.Madhya(); got != 115 {
		t.Errorf("Madhya() = %v, want 115", got)
	}

	tests := []struct {
		lon  float64
		want bool
	}{
		{101, true},   // just past the cusp
		{99, true},    // just before the cusp
		{115, false},  // mid-house
		{128.5, true}, // near the closing cusp
		{110, false},
	}
	for _, tt := range tests {
		if got := b.InSandhi(tt.lon); got != tt.want {
			t.Errorf("InSandhi(%v) = %v, want %v", tt.lon, got, tt.want)
		}
	}
}

func TestGroupings(t *testing.T) {
	tests := []struct {
		n        int
		kendra   bool
		trikona  bool
		upachaya bool
		dusthana bool
		maraka   bool
	}{
		{1, true, true, false, false, false},
		{2, false, false, false, false, true},
		{6, false, false, true, true, false},
		{7, true, false, false, false, true},
		{9, false, true, false, false, false},
		{10, true, false, true, false, false},
		{12, false, false, false, true, false},
	}
	for _, tt := range tests {
		if IsKendra(tt.n) != tt.kendra || IsTrikona(tt.n) != tt.trikona ||
			IsUpachaya(tt.n) != tt.upachaya || IsDusthana(tt.n) != tt.dusthana ||
			IsMaraka(tt.n) != tt.maraka {
			t.Errorf("house %d groupings wrong: kendra=%v trikona=%v upachaya=%v dusthana=%v maraka=%v",
				tt.n, IsKendra(tt.n), IsTrikona(tt.n), IsUpachaya(tt.n), IsDusthana(tt.n), IsMaraka(tt.n))
		}
	}
}

func TestSignifications(t *testing.T) {
	for n := 1; n <= HouseCount; n++ {
		if Name(n) == "" || SanskritName(n) == "" || len(Significations(n)) == 0 {
			t.Errorf("house %d has an incomplete signification record", n)
		}
	}
	if Name(0) != "" || Name(13) != "" {
		t.Error("out-of-range houses should have no name")
	}
}
