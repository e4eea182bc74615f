// Package zodiac provides the fixed sidereal reference frame: the 12 rasis
// with their element and modality, the 27 nakshatras, and the longitude
// arithmetic every other package builds on.
//
// All tables are immutable and validated once at load time. Longitudes are
// degrees on the ecliptic, normalized into [0, 360).
package zodiac

import (
	"fmt"
	"math"
)

// Sign is one of the 12 rasis, indexed 0-11 starting at Aries.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of rasis.
const SignCount = 12

// SignSpan is the arc of one rasi in degrees.
const SignSpan = 30.0

// Element is the classical element of a rasi.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

// Modality is the mode of a rasi, which drives the sign-to-sign aspect rule.
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

// signInfo holds the immutable reference record for one rasi.
type signInfo struct {
	name     string
	sanskrit string
	element  Element
	modality Modality
}

var signs = [SignCount]signInfo{
	Aries:       {"Aries", "Mesha", Fire, Movable},
	Taurus:      {"Taurus", "Vrishabha", Earth, Fixed},
	Gemini:      {"Gemini", "Mithuna", Air, Dual},
	Cancer:      {"Cancer", "Karka", Water, Movable},
	Leo:         {"Leo", "Simha", Fire, Fixed},
	Virgo:       {"Virgo", "Kanya", Earth, Dual},
	Libra:       {"Libra", "Tula", Air, Movable},
	Scorpio:     {"Scorpio", "Vrishchika", Water, Fixed},
	Sagittarius: {"Sagittarius", "Dhanu", Fire, Dual},
	Capricorn:   {"Capricorn", "Makara", Earth, Movable},
	Aquarius:    {"Aquarius", "Kumbha", Air, Fixed},
	Pisces:      {"Pisces", "Meena", Water, Dual},
}

func (s Sign) String() string {
	if s < 0 || s >= SignCount {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signs[s].name
}

// Sanskrit returns the traditional name of the rasi.
func (s Sign) Sanskrit() string {
	return signs[s].sanskrit
}

// Element returns the classical element of the rasi.
func (s Sign) Element() Element {
	return signs[s].element
}

// Modality returns the mode of the rasi.
func (s Sign) Modality() Modality {
	return signs[s].modality
}

// Valid reports whether s is a real rasi index.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

func (e Element) String() string {
	switch e {
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Air:
		return "Air"
	case Water:
		return "Water"
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

func (m Modality) String() string {
	switch m {
	case Movable:
		return "Movable"
	case Fixed:
		return "Fixed"
	case Dual:
		return "Dual"
	}
	return fmt.Sprintf("Modality(%d)", int(m))
}

// Normalize maps any longitude into [0, 360). The double-modulo form keeps
// negative inputs from producing negative results.
func Normalize(degrees float64) float64 {
	return math.Mod(math.Mod(degrees, 360)+360, 360)
}

// ArcDistance returns the shortest angular distance between two longitudes,
// in [0, 180].
func ArcDistance(a, b float64) float64 {
	diff := Normalize(a) - Normalize(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// ForwardDistance returns the arc traversed moving forward (counterclockwise)
// from a to b, in [0, 360).
func ForwardDistance(a, b float64) float64 {
	return Normalize(Normalize(b) - Normalize(a))
}

// SignOf returns the rasi containing the given longitude.
func SignOf(longitude float64) Sign {
	return Sign(int(Normalize(longitude) / SignSpan))
}

// DegreeInSign returns the degree within the occupied rasi, in [0, 30).
func DegreeInSign(longitude float64) float64 {
	lon := Normalize(longitude)
	return lon - float64(SignOf(lon))*SignSpan
}

// SignDistance counts signs from one rasi to another inclusively, the
// traditional cyclic count where the starting sign itself is 1 and the
// opposite sign is 7. Result is in [1, 12].
func SignDistance(from, to Sign) int {
	return (int(to)-int(from)+SignCount)%SignCount + 1
}
