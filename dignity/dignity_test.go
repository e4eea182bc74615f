package dignity

import (
	"testing"

	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// placementsAt builds a full placement set with every graha at the given
// longitude except the overrides.
func placementsAt(base float64, overrides map[graha.Graha]float64) map[graha.Graha]graha.Position {
	placements := make(map[graha.Graha]graha.Position, graha.Count)
	for _, g := range graha.All() {
		lon := base
		if o, ok := overrides[g]; ok {
			lon = o
		}
		placements[g] = graha.NewPosition(g, lon, false)
	}
	return placements
}

func TestExaltationScoresNine(t *testing.T) {
	placements := placementsAt(15, nil)
	for _, g := range graha.All() {
		exalt, ok := g.Exaltation()
		if !ok {
			continue
		}
		p := graha.NewPosition(g, float64(exalt.Sign)*30+exalt.Degree, false)
		placements[g] = p
		res := Evaluate(p, placements)
		if res.Status != Exalted || res.Score != 9 {
			t.Errorf("%v in %v: got %v score %d, want Exalted 9", g, exalt.Sign, res.Status, res.Score)
		}
		placements[g] = graha.NewPosition(g, 15, false)
	}
}

func TestDebilitationScoresOne(t *testing.T) {
	placements := placementsAt(15, nil)
	for _, g := range graha.All() {
		debil, ok := g.Debilitation()
		if !ok {
			continue
		}
		p := graha.NewPosition(g, float64(debil.Sign)*30+debil.Degree, false)
		placements[g] = p
		res := Evaluate(p, placements)
		if res.Status != Debilitated || res.Score != 1 {
			t.Errorf("%v in %v: got %v score %d, want Debilitated 1", g, debil.Sign, res.Status, res.Score)
		}
		placements[g] = graha.NewPosition(g, 15, false)
	}
}

func TestMoolatrikonaAndOwnSign(t *testing.T) {
	// Mars in Aries 5° is in moolatrikona (0-12); at 20° it is merely in
	// its own sign.
	placements := placementsAt(100, map[graha.Graha]float64{graha.Mars: 5})
	res := Evaluate(placements[graha.Mars], placements)
	if res.Status != Moolatrikona || res.Score != 8 {
		t.Errorf("Mars Aries 5° = %v %d, want Moolatrikona 8", res.Status, res.Score)
	}

	placements = placementsAt(100, map[graha.Graha]float64{graha.Mars: 20})
	res = Evaluate(placements[graha.Mars], placements)
	if res.Status != OwnSign || res.Score != 7 {
		t.Errorf("Mars Aries 20° = %v %d, want Own Sign 7", res.Status, res.Score)
	}
}

func TestTemporary(t *testing.T) {
	tests := []struct {
		from, to zodiac.Sign
		want     graha.Relation
	}{
		{zodiac.Aries, zodiac.Taurus, graha.Friend},  // distance 2
		{zodiac.Aries, zodiac.Cancer, graha.Friend},  // distance 4
		{zodiac.Aries, zodiac.Pisces, graha.Friend},  // distance 12
		{zodiac.Aries, zodiac.Aries, graha.Enemy},    // same sign
		{zodiac.Aries, zodiac.Leo, graha.Enemy},      // distance 5
		{zodiac.Aries, zodiac.Libra, graha.Enemy},    // opposition
		{zodiac.Aries, zodiac.Capricorn, graha.Friend}, // distance 10
	}
	for _, tt := range tests {
		if got := Temporary(tt.from, tt.to); got != tt.want {
			t.Errorf("Temporary(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCompound(t *testing.T) {
	tests := []struct {
		natural, temporary graha.Relation
		want               Status
	}{
		{graha.Friend, graha.Friend, GreatFriend},
		{graha.Friend, graha.Enemy, Neutral},
		{graha.Neutral, graha.Friend, Friend},
		{graha.Neutral, graha.Enemy, Enemy},
		{graha.Enemy, graha.Friend, Neutral},
		{graha.Enemy, graha.Enemy, GreatEnemy},
	}
	for _, tt := range tests {
		if got := Compound(tt.natural, tt.temporary); got != tt.want {
			t.Errorf("Compound(%v, %v) = %v, want %v", tt.natural, tt.temporary, got, tt.want)
		}
	}
}

func TestFriendshipBand(t *testing.T) {
	// Moon in Leo: natural friend of the Sun. Put the Sun two signs away
	// (Virgo) so the temporary relation is also friendly: great friend.
	placements := placementsAt(200, map[graha.Graha]float64{
		graha.Moon: 4*30 + 10, // Leo
		graha.Sun:  5*30 + 10, // Virgo
	})
	res := Evaluate(placements[graha.Moon], placements)
	if res.Status != GreatFriend || res.Score != 6 {
		t.Errorf("Moon in Leo with Sun in Virgo = %v %d, want Great Friend 6", res.Status, res.Score)
	}

	// Same natural friendship but the Sun conjunct in Leo: temporary
	// enemy, so the compound drops to neutral.
	placements = placementsAt(200, map[graha.Graha]float64{
		graha.Moon: 4*30 + 10,
		graha.Sun:  4*30 + 20,
	})
	res = Evaluate(placements[graha.Moon], placements)
	if res.Status != Neutral || res.Score != 4 {
		t.Errorf("Moon in Leo with Sun in Leo = %v %d, want Neutral 4", res.Status, res.Score)
	}
}

func TestNodeDignityStaysInFriendshipBand(t *testing.T) {
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		placements := placementsAt(15, map[graha.Graha]float64{
			graha.Rahu: float64(s)*30 + 10,
		})
		res := Evaluate(placements[graha.Rahu], placements)
		if res.Score < 2 || res.Score > 6 {
			t.Errorf("Rahu in %v scored %d, want friendship band [2,6]", s, res.Score)
		}
	}
}

func TestValidateTables(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("ValidateTables() = %v", err)
	}
}
