package graha

import (
	"github.com/teranos/jyotish/zodiac"
)

// Relation is a natural (naisargika) relationship between two grahas.
type Relation int

const (
	Enemy Relation = iota - 1
	Neutral
	Friend
)

func (r Relation) String() string {
	switch r {
	case Friend:
		return "Friend"
	case Neutral:
		return "Neutral"
	case Enemy:
		return "Enemy"
	}
	return "Unknown"
}

// Natural friendships (Naisargika Maitri). Pairs absent from both the friend
// and enemy set are neutral. The relation is not symmetric: the Moon counts
// no graha as an enemy while several count the Moon as one.
var naturalFriends = map[Graha][]Graha{
	Sun:     {Moon, Mars, Jupiter},
	Moon:    {Sun, Mercury},
	Mars:    {Sun, Moon, Jupiter},
	Mercury: {Sun, Venus},
	Jupiter: {Sun, Moon, Mars},
	Venus:   {Mercury, Saturn},
	Saturn:  {Mercury, Venus},
	Rahu:    {Mercury, Venus, Saturn},
	Ketu:    {Mars, Venus, Saturn},
}

var naturalEnemies = map[Graha][]Graha{
	Sun:     {Venus, Saturn, Rahu, Ketu},
	Moon:    {Rahu, Ketu},
	Mars:    {Mercury, Rahu, Ketu},
	Mercury: {Moon, Rahu, Ketu},
	Jupiter: {Mercury, Venus, Rahu, Ketu},
	Venus:   {Sun, Moon, Rahu, Ketu},
	Saturn:  {Sun, Moon, Mars, Rahu, Ketu},
	Rahu:    {Sun, Moon, Mars, Jupiter},
	Ketu:    {Sun, Moon, Mercury, Jupiter},
}

// NaturalRelation returns the static relationship of graha g toward other.
// A graha's relationship to itself is defined as neutral and excluded from
// temporary-friendship computation by callers.
func NaturalRelation(g, other Graha) Relation {
	if g == other {
		return Neutral
	}
	for _, f := range naturalFriends[g] {
		if f == other {
			return Friend
		}
	}
	for _, e := range naturalEnemies[g] {
		if e == other {
			return Enemy
		}
	}
	return Neutral
}

// Sign rulership. The nodes own no signs; every sign has exactly one ruler,
// so lordship lookups are never ambiguous.
var rulers = [zodiac.SignCount]Graha{
	zodiac.Aries:       Mars,
	zodiac.Taurus:      Venus,
	zodiac.Gemini:      Mercury,
	zodiac.Cancer:      Moon,
	zodiac.Leo:         Sun,
	zodiac.Virgo:       Mercury,
	zodiac.Libra:       Venus,
	zodiac.Scorpio:     Mars,
	zodiac.Sagittarius: Jupiter,
	zodiac.Capricorn:   Saturn,
	zodiac.Aquarius:    Saturn,
	zodiac.Pisces:      Jupiter,
}

// Ruler returns the natural ruler of a rasi.
func Ruler(s zodiac.Sign) Graha {
	return rulers[s]
}

// OwnSigns returns the rasis ruled by g, in zodiac order. Empty for the nodes.
func (g Graha) OwnSigns() []zodiac.Sign {
	var owned []zodiac.Sign
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		if rulers[s] == g {
			owned = append(owned, s)
		}
	}
	return owned
}

// Owns reports whether g rules rasi s.
func (g Graha) Owns(s zodiac.Sign) bool {
	return rulers[s] == g
}

// SignDegree is a point identified by rasi and degree within it.
type SignDegree struct {
	Sign   zodiac.Sign
	Degree float64
}

// Exaltation points. The nodes carry no exaltation in this engine; their
// dignity stays within the friendship band.
var exaltations = map[Graha]SignDegree{
	Sun:     {zodiac.Aries, 10},
	Moon:    {zodiac.Taurus, 3},
	Mars:    {zodiac.Capricorn, 28},
	Mercury: {zodiac.Virgo, 15},
	Jupiter: {zodiac.Cancer, 5},
	Venus:   {zodiac.Pisces, 27},
	Saturn:  {zodiac.Libra, 20},
}

// Debilitation is always the sign opposite exaltation, at the same degree.
var debilitations = map[Graha]SignDegree{
	Sun:     {zodiac.Libra, 10},
	Moon:    {zodiac.Scorpio, 3},
	Mars:    {zodiac.Cancer, 28},
	Mercury: {zodiac.Pisces, 15},
	Jupiter: {zodiac.Capricorn, 5},
	Venus:   {zodiac.Virgo, 27},
	Saturn:  {zodiac.Aries, 20},
}

// Exaltation returns the exaltation point of g, if it has one.
func (g Graha) Exaltation() (SignDegree, bool) {
	p, ok := exaltations[g]
	return p, ok
}

// Debilitation returns the debilitation point of g, if it has one.
func (g Graha) Debilitation() (SignDegree, bool) {
	p, ok := debilitations[g]
	return p, ok
}

// MoolatrikonaRange is the portion of a rasi where a graha is in its
// moolatrikona dignity.
type MoolatrikonaRange struct {
	Sign zodiac.Sign
	From float64 // inclusive
	To   float64 // inclusive
}

var moolatrikonas = map[Graha]MoolatrikonaRange{
	Sun:     {zodiac.Leo, 0, 20},
	Moon:    {zodiac.Taurus, 4, 30},
	Mars:    {zodiac.Aries, 0, 12},
	Mercury: {zodiac.Virgo, 16, 20},
	Jupiter: {zodiac.Sagittarius, 0, 10},
	Venus:   {zodiac.Libra, 0, 15},
	Saturn:  {zodiac.Aquarius, 0, 20},
}

// Moolatrikona returns the moolatrikona range of g, if it has one.
func (g Graha) Moolatrikona() (MoolatrikonaRange, bool) {
	r, ok := moolatrikonas[g]
	return r, ok
}

// InMoolatrikona reports whether the given placement falls inside the
// graha's moolatrikona range.
func (g Graha) InMoolatrikona(sign zodiac.Sign, degree float64) bool {
	r, ok := moolatrikonas[g]
	if !ok || r.Sign != sign {
		return false
	}
	return degree >= r.From && degree <= r.To
}

// Combustion orbs in degrees of shortest-arc separation from the Sun.
// The Sun itself and the nodes are never combust.
var combustionOrbs = map[Graha]float64{
	Moon:    12,
	Mars:    17,
	Mercury: 14,
	Jupiter: 11,
	Venus:   10,
	Saturn:  15,
}

// CombustionOrb returns the combustion orb for g. ok is false for bodies
// that cannot combust.
func (g Graha) CombustionOrb() (orb float64, ok bool) {
	orb, ok = combustionOrbs[g]
	return orb, ok
}
