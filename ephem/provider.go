package ephem

import (
	"context"
	"math"
	"time"

	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
)

// TropicalPosition is one body's raw state as reported by a provider.
type TropicalPosition struct {
	Longitude  float64 // tropical ecliptic longitude, degrees
	Retrograde bool
}

// Provider supplies tropical positions for the nine bodies. It is the only
// blocking boundary in the engine: implementations may consult a precision
// ephemeris, a remote service, or a static table, and should honor ctx
// cancellation if they block.
type Provider interface {
	Position(ctx context.Context, body graha.Graha, instant time.Time) (TropicalPosition, error)
}

// ValidatePosition rejects provider output the engine cannot use. A silent
// zero-position would corrupt every downstream table, so out-of-range
// longitudes abort the chart instead.
func ValidatePosition(body graha.Graha, p TropicalPosition) error {
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return errors.Ephemerisf("provider returned non-finite longitude for %s", body)
	}
	if p.Longitude < 0 || p.Longitude >= 360 {
		return errors.Ephemerisf("provider returned out-of-range longitude %f for %s", p.Longitude, body)
	}
	return nil
}
