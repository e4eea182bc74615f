package chart

import (
	"time"

	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/ephem"
	"github.com/teranos/jyotish/errors"
)

// BirthInput is the complete input for one chart. The instant must be
// timezone-normalized upstream; the engine treats it as UTC.
type BirthInput struct {
	Instant     time.Time
	Latitude    float64 // degrees, positive north
	Longitude   float64 // degrees, positive east
	Ayanamsa    ephem.Ayanamsa
	HouseSystem bhava.System
}

// Validate rejects malformed input before any computation starts. Bad
// coordinates or a missing instant are input errors; unknown enum values
// are configuration errors. Nothing ever defaults silently.
func (in BirthInput) Validate() error {
	if in.Instant.IsZero() {
		return errors.Inputf("birth instant is not set")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return errors.Inputf("latitude %f outside [-90, 90]", in.Latitude)
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return errors.Inputf("longitude %f outside [-180, 180]", in.Longitude)
	}
	if !in.Ayanamsa.Valid() {
		return errors.Configf("unknown ayanamsa %d", int(in.Ayanamsa))
	}
	if !in.HouseSystem.Valid() {
		return errors.Configf("unknown house system %d", int(in.HouseSystem))
	}
	return nil
}
