// Package config holds the engine configuration: default chart parameters,
// strength weights, batch pool sizing and log output. Values come from a
// TOML file, JYOTISH_ environment variables and built-in defaults, in that
// precedence order.
package config

import (
	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/chart"
	"github.com/teranos/jyotish/ephem"
)

// Config is the root configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Batch  BatchConfig  `mapstructure:"batch"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig sets the default chart parameters. Ayanamsa and house system
// are kept as names here and parsed on access so an unknown value fails
// validation instead of silently mapping to an enum zero value.
type EngineConfig struct {
	Ayanamsa    string                `mapstructure:"ayanamsa"`
	HouseSystem string                `mapstructure:"house_system"`
	Strength    chart.StrengthWeights `mapstructure:"strength"`
}

// BatchConfig sizes the batch worker pool and throttles the provider.
type BatchConfig struct {
	Workers       int     `mapstructure:"workers"`
	ProviderRate  float64 `mapstructure:"provider_rate"`  // positions per second, 0 = unlimited
	ProviderBurst int     `mapstructure:"provider_burst"` // limiter burst when rate is set
}

// LogConfig selects the log output format.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// ParseAyanamsa parses the configured ayanamsa name.
func (c *EngineConfig) ParseAyanamsa() (ephem.Ayanamsa, error) {
	return ephem.ParseAyanamsa(c.Ayanamsa)
}

// ParseHouseSystem parses the configured house system name.
func (c *EngineConfig) ParseHouseSystem() (bhava.System, error) {
	return bhava.ParseSystem(c.HouseSystem)
}
