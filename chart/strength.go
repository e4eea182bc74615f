package chart

import (
	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/errors"
)

// StrengthWeights configures house-strength scoring. Every contribution is
// weighted here; the scorer itself carries no magic numbers. Malefic and
// combustion weights are magnitudes, the scorer subtracts them.
type StrengthWeights struct {
	OccupantDignity float64 `toml:"occupant_dignity" mapstructure:"occupant_dignity"`
	BeneficAspect   float64 `toml:"benefic_aspect" mapstructure:"benefic_aspect"`
	MaleficAspect   float64 `toml:"malefic_aspect" mapstructure:"malefic_aspect"`
	LordDignity     float64 `toml:"lord_dignity" mapstructure:"lord_dignity"`
	LordPlacement   float64 `toml:"lord_placement" mapstructure:"lord_placement"`
	CombustPenalty  float64 `toml:"combust_penalty" mapstructure:"combust_penalty"`
}

// DefaultStrengthWeights returns the stock weighting: dignity dominates,
// aspects received count half, combustion costs two points.
func DefaultStrengthWeights() StrengthWeights {
	return StrengthWeights{
		OccupantDignity: 1.0,
		BeneficAspect:   0.5,
		MaleficAspect:   0.5,
		LordDignity:     1.0,
		LordPlacement:   1.0,
		CombustPenalty:  2.0,
	}
}

// Validate rejects negative weights. Sign is fixed by the scorer; a negative
// weight would silently invert a rule.
func (w StrengthWeights) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"occupant_dignity", w.OccupantDignity},
		{"benefic_aspect", w.BeneficAspect},
		{"malefic_aspect", w.MaleficAspect},
		{"lord_dignity", w.LordDignity},
		{"lord_placement", w.LordPlacement},
		{"combust_penalty", w.CombustPenalty},
	} {
		if f.value < 0 {
			return errors.Configf("strength weight %s is negative: %f", f.name, f.value)
		}
	}
	return nil
}

// HouseStrength is the scored strength of one house.
type HouseStrength struct {
	House int
	Score float64
}

// computeStrengths scores all 12 houses. Per house: occupant dignity and
// combustion, aspects received keyed to the source's benefic state, then the
// lord's dignity, placement quality and combustion.
func computeStrengths(c *Chart, w StrengthWeights) [bhava.HouseCount]HouseStrength {
	var strengths [bhava.HouseCount]HouseStrength

	for i := range strengths {
		house := i + 1
		score := 0.0

		for _, g := range c.bhavas[i].Occupants {
			state := c.grahas[g]
			score += w.OccupantDignity * float64(state.Dignity.Score)
			if state.Combust {
				score -= w.CombustPenalty
			}
		}

		for _, a := range c.aspects.OnHouses {
			if a.TargetHouse != house {
				continue
			}
			if c.grahas[a.Source].Benefic {
				score += w.BeneficAspect
			} else {
				score -= w.MaleficAspect
			}
		}

		lord := c.grahas[c.bhavas[i].Lord]
		score += w.LordDignity * float64(lord.Dignity.Score)
		switch {
		case bhava.IsKendra(lord.House) || bhava.IsTrikona(lord.House):
			score += w.LordPlacement
		case bhava.IsDusthana(lord.House):
			score -= w.LordPlacement
		}
		if lord.Combust {
			score -= w.CombustPenalty
		}

		strengths[i] = HouseStrength{House: house, Score: score}
	}

	return strengths
}
