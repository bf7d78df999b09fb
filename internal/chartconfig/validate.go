package chartconfig

import (
	"fmt"

	"github.com/wonny/jyotish/internal/contracts"
)

// Validate checks the closed value sets before the config is used anywhere.
func Validate(cfg *Config) error {
	if cfg.Meta.ProfileID == "" {
		return fmt.Errorf("meta.profile_id is required")
	}
	if err := cfg.Preferences.Validate(); err != nil {
		return err
	}
	for name, orb := range cfg.CombustionOrbs {
		if !knownPlanet(name) {
			return &contracts.ConfigurationError{Setting: "combustion_orbs", Value: name}
		}
		if orb <= 0 || orb > 30 {
			return fmt.Errorf("combustion orb for %s out of range (0, 30]: %v", name, orb)
		}
	}
	return nil
}

func knownPlanet(name string) bool {
	for _, p := range contracts.AllPlanets() {
		if p.String() == name {
			return true
		}
	}
	return false
}
