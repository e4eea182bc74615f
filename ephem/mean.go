package ephem

import (
	"context"
	"time"

	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

// meanElement is a linear mean-motion model: longitude at J2000 plus a
// constant daily rate.
type meanElement struct {
	epochLongitude float64 // degrees at J2000.0
	dailyMotion    float64 // degrees per day
}

// Mean elements at J2000. The Sun, Moon and lunar node rates are geocentric;
// the planetary rates are mean orbital motion, which ignores geocentric
// retrograde loops. Good to a few degrees over decades around J2000, which
// is what a placeholder table needs to be.
var meanElements = map[graha.Graha]meanElement{
	graha.Sun:     {280.460, 0.9856474},
	graha.Moon:    {218.316, 13.176396},
	graha.Mars:    {355.433275, 0.52402068},
	graha.Mercury: {252.250906, 4.09233445},
	graha.Jupiter: {34.351484, 0.08308529},
	graha.Venus:   {181.979801, 1.60213034},
	graha.Saturn:  {50.077471, 0.03344414},
	graha.Rahu:    {125.04452, -0.05295377}, // mean node regresses
}

// MeanProvider is the built-in low-precision ephemeris. It lets the engine
// and CLI run without an external position source; swap in a precision
// Provider when accuracy matters.
//
// Ketu is derived as Rahu plus 180 degrees, so the nodes are exactly
// opposite by construction. Both nodes report retrograde motion; the other
// bodies report direct motion since the mean model has no retrograde loops.
type MeanProvider struct{}

var _ Provider = MeanProvider{}

// Position implements Provider.
func (MeanProvider) Position(ctx context.Context, body graha.Graha, instant time.Time) (TropicalPosition, error) {
	if err := ctx.Err(); err != nil {
		return TropicalPosition{}, errors.WrapEphemeris(err, "mean provider")
	}

	lookup := body
	if body == graha.Ketu {
		lookup = graha.Rahu
	}
	elem, ok := meanElements[lookup]
	if !ok {
		return TropicalPosition{}, errors.Ephemerisf("no mean elements for body %s", body)
	}

	days := JulianDay(instant) - j2000
	lon := zodiac.Normalize(elem.epochLongitude + elem.dailyMotion*days)
	if body == graha.Ketu {
		lon = zodiac.Normalize(lon + 180)
	}

	return TropicalPosition{
		Longitude:  lon,
		Retrograde: body.IsNode(),
	}, nil
}
