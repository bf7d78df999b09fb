// Package chartconfig loads per-computation calculation preferences from
// YAML. The loaded config hashes to a stable key, which external caches can
// combine with the birth data to memoize results.
package chartconfig

import (
	"github.com/wonny/jyotish/internal/contracts"
)

// Config is the full calculation preference set.
type Config struct {
	Meta           Meta                  `yaml:"meta" json:"meta"`
	Preferences    contracts.Preferences `yaml:"preferences" json:"preferences"`
	CombustionOrbs map[string]float64    `yaml:"combustion_orbs" json:"combustion_orbs"`
}

// Meta identifies a preference profile.
type Meta struct {
	ProfileID string `yaml:"profile_id" json:"profile_id"`
	Version   string `yaml:"version" json:"version"`
}

// Default returns the classical defaults without touching the filesystem.
func Default() *Config {
	return &Config{
		Meta:        Meta{ProfileID: "default", Version: "1"},
		Preferences: contracts.DefaultPreferences(),
	}
}

// OrbOverrides resolves the orb override map onto planet ids. Unknown
// planet names were already rejected by Validate.
func (c *Config) OrbOverrides() map[contracts.Planet]float64 {
	if len(c.CombustionOrbs) == 0 {
		return nil
	}
	out := make(map[contracts.Planet]float64, len(c.CombustionOrbs))
	for name, orb := range c.CombustionOrbs {
		for _, p := range contracts.AllPlanets() {
			if p.String() == name {
				out[p] = orb
			}
		}
	}
	return out
}
