package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
)

// planetsInHouseFromSun lists non-node planets other than the Sun and Moon
// standing n houses from the Sun, the set the solar support yogas count.
func planetsInHouseFromSun(ctx *contracts.ChartContext, n int) []contracts.Planet {
	var out []contracts.Planet
	for _, p := range contracts.SevenPlanets() {
		if p == contracts.Sun || p == contracts.Moon {
			continue
		}
		if houseFrom(ctx, contracts.Sun, p) == n {
			out = append(out, p)
		}
	}
	return out
}

// solarRules are the Sun-anchored yogas.
func solarRules() []Rule {
	return []Rule{
		{
			Name:         "Budha-Aditya",
			Significance: "Mercury conjoined with the Sun; sharp intellect, administrative skill.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				if conjunct(ctx, contracts.Sun, contracts.Mercury) {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Sun, contracts.Mercury}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Vesi",
			Significance: "A planet other than the Moon in the 2nd from the Sun; balanced, truthful disposition.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				ps := planetsInHouseFromSun(ctx, 2)
				if len(ps) > 0 {
					return contracts.Yoga{Planets: ps}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Vosi",
			Significance: "A planet other than the Moon in the 12th from the Sun; skill, learning, charitable nature.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				ps := planetsInHouseFromSun(ctx, 12)
				if len(ps) > 0 {
					return contracts.Yoga{Planets: ps}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Ubhayachari",
			Significance: "Planets on both sides of the Sun; eloquence and wide influence.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				second := planetsInHouseFromSun(ctx, 2)
				twelfth := planetsInHouseFromSun(ctx, 12)
				if len(second) > 0 && len(twelfth) > 0 {
					return contracts.Yoga{Planets: append(second, twelfth...)}, true
				}
				return contracts.Yoga{}, false
			},
		},
	}
}
