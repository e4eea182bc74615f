package config

import "github.com/teranos/jyotish/errors"

// Validate checks that the configuration is valid. Enum-valued settings must
// parse; there is no fallback for an unknown name.
func (c *Config) Validate() error {
	if _, err := c.Engine.ParseAyanamsa(); err != nil {
		return err
	}
	if _, err := c.Engine.ParseHouseSystem(); err != nil {
		return err
	}
	if err := c.Engine.Strength.Validate(); err != nil {
		return err
	}

	if c.Batch.Workers < 1 {
		return errors.Configf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if c.Batch.ProviderRate < 0 {
		return errors.Configf("batch.provider_rate must be >= 0, got %f", c.Batch.ProviderRate)
	}
	if c.Batch.ProviderRate > 0 && c.Batch.ProviderBurst < 1 {
		return errors.Configf("batch.provider_burst must be at least 1 when rate limiting, got %d", c.Batch.ProviderBurst)
	}

	return nil
}
