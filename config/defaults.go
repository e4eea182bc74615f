package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/jyotish/chart"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Engine defaults: Lahiri sidereal zodiac, equal houses.
	v.SetDefault("engine.ayanamsa", "lahiri")
	v.SetDefault("engine.house_system", "equal")

	w := chart.DefaultStrengthWeights()
	v.SetDefault("engine.strength.occupant_dignity", w.OccupantDignity)
	v.SetDefault("engine.strength.benefic_aspect", w.BeneficAspect)
	v.SetDefault("engine.strength.malefic_aspect", w.MaleficAspect)
	v.SetDefault("engine.strength.lord_dignity", w.LordDignity)
	v.SetDefault("engine.strength.lord_placement", w.LordPlacement)
	v.SetDefault("engine.strength.combust_penalty", w.CombustPenalty)

	// Batch defaults: small pool, unthrottled provider.
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.provider_rate", 0.0)
	v.SetDefault("batch.provider_burst", 1)

	// Log defaults: human-readable console output.
	v.SetDefault("log.json", false)
}
