package chart

import (
	"sync"

	"github.com/teranos/jyotish/dignity"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/zodiac"
)

var (
	tablesOnce sync.Once
	tablesErr  error
)

// ValidateTables checks every static reference table the engine computes
// from: rasi and nakshatra records, graha relationship and dignity tables,
// and the full (graha, rasi) dignity resolution. The checks run once per
// process; call this at startup so a broken table fails the process instead
// of a chart. Compute also runs it, so library consumers that skip the
// explicit call still never see a half-validated engine.
func ValidateTables() error {
	tablesOnce.Do(func() {
		for _, validate := range []func() error{
			zodiac.ValidateTables,
			graha.ValidateTables,
			dignity.ValidateTables,
		} {
			if err := validate(); err != nil {
				tablesErr = err
				return
			}
		}
	})
	return tablesErr
}
