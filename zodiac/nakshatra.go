package zodiac

import (
	"fmt"
)

// Nakshatra is one of the 27 lunar mansions, indexed 0-26 starting at Ashwini.
type Nakshatra int

const (
	Ashwini Nakshatra = iota
	Bharani
	Krittika
	Rohini
	Mrigashira
	Ardra
	Punarvasu
	Pushya
	Ashlesha
	Magha
	PurvaPhalguni
	UttaraPhalguni
	Hasta
	Chitra
	Swati
	Vishakha
	Anuradha
	Jyeshtha
	Mula
	PurvaAshadha
	UttaraAshadha
	Shravana
	Dhanishta
	Shatabhisha
	PurvaBhadrapada
	UttaraBhadrapada
	Revati
)

// NakshatraCount is the number of lunar mansions.
const NakshatraCount = 27

// NakshatraSpan is the arc of one nakshatra, 13°20'.
const NakshatraSpan = 360.0 / NakshatraCount

// PadaSpan is the arc of one pada, 3°20'. Each nakshatra holds four padas.
const PadaSpan = NakshatraSpan / 4

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha",
	"Anuradha", "Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha",
	"Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

func (n Nakshatra) String() string {
	if n < 0 || n >= NakshatraCount {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

// Valid reports whether n is a real nakshatra index.
func (n Nakshatra) Valid() bool {
	return n >= Ashwini && n <= Revati
}

// NakshatraOf returns the lunar mansion containing the given longitude.
func NakshatraOf(longitude float64) Nakshatra {
	return Nakshatra(int(Normalize(longitude) / NakshatraSpan))
}

// PadaOf returns the quarter (1-4) of the nakshatra containing the given
// longitude.
func PadaOf(longitude float64) int {
	lon := Normalize(longitude)
	inNakshatra := lon - float64(NakshatraOf(lon))*NakshatraSpan
	return int(inNakshatra/PadaSpan) + 1
}
