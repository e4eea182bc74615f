// Package dignity scores each graha's standing in its occupied rasi using
// the five-fold friendship system (Panchadha Maitri). The natural
// relationship between a graha and the rasi's ruler is joined with their
// temporary, placement-dependent relationship, then exaltation,
// moolatrikona and own-sign placement override the friendship bucket.
//
// The final score is the fixed 1-9 scale: exaltation 9, debilitation 1,
// with the friendship buckets in between.
package dignity

import (
	"fmt"

	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// Status is the resolved dignity of a graha in a rasi.
type Status int

const (
	Debilitated Status = iota
	GreatEnemy
	Enemy
	Neutral
	Friend
	GreatFriend
	OwnSign
	Moolatrikona
	Exalted
)

var statusNames = map[Status]string{
	Exalted:      "Exalted",
	Moolatrikona: "Moolatrikona",
	OwnSign:      "Own Sign",
	GreatFriend:  "Great Friend",
	Friend:       "Friend",
	Neutral:      "Neutral",
	Enemy:        "Enemy",
	GreatEnemy:   "Great Enemy",
	Debilitated:  "Debilitated",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Score maps a status onto the 1-9 scale.
func (s Status) Score() int {
	return int(s) + 1
}

// Result is the dignity of one graha in its occupied rasi.
type Result struct {
	Status Status
	Score  int
}

// Temporary friendship (Tatkalika Maitri): two grahas are temporary friends
// when the inclusive sign distance between their placements is 2, 3, 4, 10,
// 11 or 12, that is, when one sits in the other's neighborhood but not in
// the same sign or its squares and oppositions.
var temporaryFriendDistances = map[int]bool{
	2: true, 3: true, 4: true, 10: true, 11: true, 12: true,
}

// Temporary returns the placement-dependent relationship between two
// occupied signs: Friend or Enemy, never Neutral. Same-sign placement
// (distance 1) is an enemy distance.
func Temporary(from, to zodiac.Sign) graha.Relation {
	if temporaryFriendDistances[zodiac.SignDistance(from, to)] {
		return graha.Friend
	}
	return graha.Enemy
}

// Compound joins a natural relationship with a temporary one into the
// five-fold bucket.
func Compound(natural, temporary graha.Relation) Status {
	switch natural {
	case graha.Friend:
		if temporary == graha.Friend {
			return GreatFriend
		}
		return Neutral
	case graha.Enemy:
		if temporary == graha.Friend {
			return Neutral
		}
		return GreatEnemy
	default:
		if temporary == graha.Friend {
			return Friend
		}
		return Enemy
	}
}

// Evaluate resolves the dignity of one placed graha against the full set of
// placements. Exaltation, debilitation, moolatrikona and own-sign placement
// take precedence, in that order; otherwise the compound friendship with
// the occupied rasi's ruler decides.
//
// The nodes own no signs and carry no exaltation overrides, so their
// dignity always comes from the friendship band.
func Evaluate(p graha.Position, placements map[graha.Graha]graha.Position) Result {
	g := p.Graha

	if exalt, ok := g.Exaltation(); ok && exalt.Sign == p.Sign {
		return result(Exalted)
	}
	if debil, ok := g.Debilitation(); ok && debil.Sign == p.Sign {
		return result(Debilitated)
	}
	if g.InMoolatrikona(p.Sign, p.Degree) {
		return result(Moolatrikona)
	}
	if g.Owns(p.Sign) {
		return result(OwnSign)
	}

	ruler := graha.Ruler(p.Sign)
	natural := graha.NaturalRelation(g, ruler)

	temporary := graha.Enemy
	if rulerPos, ok := placements[ruler]; ok {
		temporary = Temporary(p.Sign, rulerPos.Sign)
	}

	return result(Compound(natural, temporary))
}

func result(s Status) Result {
	return Result{Status: s, Score: s.Score()}
}
