// Package chart is the aggregate root of the engine. Compute turns a
// BirthInput and a position provider into one immutable Chart: graha
// placements, houses, aspects, dignities, combustion, lordship analysis,
// house strengths and detected yogas, exposed through a read-only query
// surface.
//
// A Chart is built atomically. Any failure during construction returns an
// error and no Chart; a partially-populated Chart is never exposed. Once
// built it is never mutated, so charts are safe to share across goroutines
// without synchronization.
package chart

import (
	"context"
	"time"

	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/dignity"
	"github.com/teranos/jyotish/drishti"
	"github.com/teranos/jyotish/ephem"
	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/logger"
	"github.com/teranos/jyotish/zodiac"
)

// Ascendant is the rising point of the chart in the sidereal frame.
type Ascendant struct {
	Longitude float64
	Sign      zodiac.Sign
	Degree    float64
	Nakshatra zodiac.Nakshatra
	Pada      int
}

// GrahaState is one body's full analyzed state in a chart.
type GrahaState struct {
	graha.Position
	House   int
	Dignity dignity.Result
	Combust bool
	// Benefic is the chart-conditional natural classification: the Moon
	// is benefic while waxing, Mercury unless it shares a rasi with a
	// natural malefic.
	Benefic bool
	Nature  bhava.FunctionalNature
}

// AspectSet is the chart's complete aspect output: both aspect systems,
// computed independently and never merged.
type AspectSet struct {
	OnHouses []drishti.HouseAspect
	OnGrahas []drishti.PlanetAspect
	Signs    []drishti.SignAspect
}

// Chart is the immutable aggregate. All fields are set once by Compute.
type Chart struct {
	input     BirthInput
	weights   StrengthWeights
	ascendant Ascendant
	grahas    [graha.Count]GrahaState
	bhavas    [bhava.HouseCount]bhava.Bhava
	aspects   AspectSet
	karakas   [KarakaCount]KarakaAssignment
	strengths [bhava.HouseCount]HouseStrength
	yogas     []Yoga
}

// Compute builds a chart. It is a pure function of its inputs plus the
// static reference tables; the provider call is the only blocking boundary
// and the only consumer of ctx.
func Compute(ctx context.Context, in BirthInput, provider ephem.Provider, weights StrengthWeights) (*Chart, error) {
	start := time.Now()

	if err := ValidateTables(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errors.Configf("no ephemeris provider configured")
	}

	// Ascendant: local sidereal time and latitude fix the horizon, the
	// ayanamsa shifts the result into the sidereal frame.
	lst := ephem.LocalSiderealTime(in.Instant, in.Longitude)
	obliquity := ephem.Obliquity(ephem.JulianDay(in.Instant))
	tropicalAsc := ephem.AscendantLongitude(lst, in.Latitude, obliquity)
	ascLon := in.Ayanamsa.ToSidereal(tropicalAsc, in.Instant)

	asc := Ascendant{
		Longitude: ascLon,
		Sign:      zodiac.SignOf(ascLon),
		Degree:    zodiac.DegreeInSign(ascLon),
		Nakshatra: zodiac.NakshatraOf(ascLon),
		Pada:      zodiac.PadaOf(ascLon),
	}

	// Body positions. Ketu is never queried: it is derived from Rahu so
	// the nodes are exactly opposite by construction.
	byGraha := make(map[graha.Graha]graha.Position, graha.Count)
	for _, g := range graha.All() {
		if g == graha.Ketu {
			continue
		}
		raw, err := provider.Position(ctx, g, in.Instant)
		if err != nil {
			return nil, errors.WrapEphemeris(err, "querying position of "+g.String())
		}
		if err := ephem.ValidatePosition(g, raw); err != nil {
			return nil, err
		}
		sidereal := in.Ayanamsa.ToSidereal(raw.Longitude, in.Instant)
		byGraha[g] = graha.NewPosition(g, sidereal, raw.Retrograde)
	}
	byGraha[graha.Ketu] = graha.NewPosition(graha.Ketu, byGraha[graha.Rahu].Longitude+180, true)

	positions := make([]graha.Position, 0, graha.Count)
	for _, g := range graha.All() {
		positions = append(positions, byGraha[g])
	}

	houses, err := bhava.Build(in.HouseSystem, ascLon, positions)
	if err != nil {
		return nil, err
	}

	placements := make(map[graha.Graha]int, graha.Count)
	for _, p := range positions {
		placements[p.Graha] = bhava.HouseOf(p.Longitude, ascLon)
	}

	aspects := AspectSet{
		OnHouses: drishti.HouseAspects(placements),
		OnGrahas: drishti.PlanetAspects(placements),
		Signs:    drishti.SignAspects(),
	}

	benefic := resolveBenefics(byGraha)

	c := &Chart{
		input:     in,
		weights:   weights,
		ascendant: asc,
		bhavas:    houses,
		aspects:   aspects,
		karakas:   computeKarakas(byGraha),
	}

	sun := byGraha[graha.Sun]
	for i, g := range graha.All() {
		p := byGraha[g]
		c.grahas[i] = GrahaState{
			Position: p,
			House:    placements[g],
			Dignity:  dignity.Evaluate(p, byGraha),
			Combust:  Combust(p, sun.Longitude),
			Benefic:  benefic[g],
			Nature:   bhava.FunctionalNatureOf(asc.Sign, g),
		}
	}

	c.strengths = computeStrengths(c, weights)
	c.yogas = detectYogas(c)

	logger.Debugw("chart computed",
		logger.FieldAyanamsa, in.Ayanamsa.String(),
		logger.FieldMoment, in.Instant,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return c, nil
}

// resolveBenefics applies the conditional natural-benefic rules. The Moon's
// state is resolved first so it can count as a malefic companion for
// Mercury while waning.
func resolveBenefics(byGraha map[graha.Graha]graha.Position) map[graha.Graha]bool {
	benefic := make(map[graha.Graha]bool, graha.Count)

	// Waxing: the Moon is ahead of the Sun by less than half the circle.
	moonWaxing := zodiac.ForwardDistance(
		byGraha[graha.Sun].Longitude, byGraha[graha.Moon].Longitude) < 180

	for _, g := range graha.All() {
		switch g {
		case graha.Moon:
			benefic[g] = moonWaxing
		case graha.Mercury:
			// Resolved below once every other nature is known.
		default:
			benefic[g] = g.NaturallyBenefic()
		}
	}

	mercurySign := byGraha[graha.Mercury].Sign
	benefic[graha.Mercury] = true
	for _, g := range graha.All() {
		if g == graha.Mercury {
			continue
		}
		if byGraha[g].Sign == mercurySign && !benefic[g] {
			benefic[graha.Mercury] = false
			break
		}
	}

	return benefic
}

// Input returns the birth input the chart was computed from.
func (c *Chart) Input() BirthInput {
	return c.input
}

// Ascendant returns the rising point.
func (c *Chart) Ascendant() Ascendant {
	return c.ascendant
}

// GrahaPositions returns the nine analyzed graha states in enumeration
// order.
func (c *Chart) GrahaPositions() []GrahaState {
	states := make([]GrahaState, graha.Count)
	copy(states, c.grahas[:])
	return states
}

// Graha returns the analyzed state of one body.
func (c *Chart) Graha(g graha.Graha) (GrahaState, bool) {
	if !g.Valid() {
		return GrahaState{}, false
	}
	return c.grahas[g], true
}

// Bhavas returns the 12 houses.
func (c *Chart) Bhavas() [bhava.HouseCount]bhava.Bhava {
	return c.bhavas
}

// Aspects returns the chart's full aspect output.
func (c *Chart) Aspects() AspectSet {
	return AspectSet{
		OnHouses: append([]drishti.HouseAspect(nil), c.aspects.OnHouses...),
		OnGrahas: append([]drishti.PlanetAspect(nil), c.aspects.OnGrahas...),
		Signs:    append([]drishti.SignAspect(nil), c.aspects.Signs...),
	}
}

// HouseStrengths returns the weighted strength of each house.
func (c *Chart) HouseStrengths() [bhava.HouseCount]HouseStrength {
	return c.strengths
}

// Yogas returns the detected yogas with their participants.
func (c *Chart) Yogas() []Yoga {
	return append([]Yoga(nil), c.yogas...)
}

// LordCombust reports derived house-lord combustion: the lord of house n is
// combust iff the graha holding that lordship is itself combust.
func (c *Chart) LordCombust(house int) bool {
	if house < 1 || house > bhava.HouseCount {
		return false
	}
	return c.grahas[c.bhavas[house-1].Lord].Combust
}
