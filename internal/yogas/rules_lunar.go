package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
)

// lunarRules are the Moon-anchored yogas.
func lunarRules() []Rule {
	return []Rule{
		{
			Name:         "Gaja Kesari",
			Significance: "Jupiter in a kendra from the Moon; fame, lasting reputation, discerning intellect.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				d := houseFrom(ctx, contracts.Moon, contracts.Jupiter)
				if d == 1 || d == 4 || d == 7 || d == 10 {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Moon, contracts.Jupiter}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Sunapha",
			Significance: "A planet other than the Sun in the 2nd from the Moon; self-earned wealth and standing.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				ps := planetsInHouseFromMoon(ctx, 2, false)
				if len(ps) > 0 {
					return contracts.Yoga{Planets: ps}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Anapha",
			Significance: "A planet other than the Sun in the 12th from the Moon; health, character, renunciation late in life.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				ps := planetsInHouseFromMoon(ctx, 12, false)
				if len(ps) > 0 {
					return contracts.Yoga{Planets: ps}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Durudhara",
			Significance: "Planets flank the Moon on both sides; wealth, vehicles and generosity.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				second := planetsInHouseFromMoon(ctx, 2, false)
				twelfth := planetsInHouseFromMoon(ctx, 12, false)
				if len(second) > 0 && len(twelfth) > 0 {
					return contracts.Yoga{Planets: append(second, twelfth...)}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Kemadruma",
			Significance: "No planet with the Moon or flanking it; struggles despite other promise.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				if len(planetsInHouseFromMoon(ctx, 2, false)) > 0 {
					return contracts.Yoga{}, false
				}
				if len(planetsInHouseFromMoon(ctx, 12, false)) > 0 {
					return contracts.Yoga{}, false
				}
				if len(planetsInHouseFromMoon(ctx, 1, false)) > 0 {
					return contracts.Yoga{}, false
				}
				return contracts.Yoga{Planets: []contracts.Planet{contracts.Moon}}, true
			},
		},
		{
			Name:         "Adhi",
			Significance: "Benefics in the 6th, 7th and 8th from the Moon; leadership, comfort, defeat of rivals.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				var found []contracts.Planet
				houses := map[int]bool{}
				for _, p := range []contracts.Planet{contracts.Mercury, contracts.Jupiter, contracts.Venus} {
					d := houseFrom(ctx, contracts.Moon, p)
					if d == 6 || d == 7 || d == 8 {
						found = append(found, p)
						houses[d] = true
					}
				}
				if len(houses) >= 2 && len(found) >= 2 {
					return contracts.Yoga{Planets: found}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Chandra-Mangala",
			Significance: "Moon and Mars conjoined; earning drive, property, an assertive temperament.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				if conjunct(ctx, contracts.Moon, contracts.Mars) {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Moon, contracts.Mars}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Shakata",
			Significance: "Moon in the 6th, 8th or 12th from Jupiter; fluctuating fortunes.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				d := houseFrom(ctx, contracts.Jupiter, contracts.Moon)
				if d == 6 || d == 8 || d == 12 {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Moon, contracts.Jupiter}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Amala",
			Significance: "Only benefics in the 10th from the Moon; an unblemished, honored career.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				ps := planetsInHouseFromMoon(ctx, 10, true)
				if len(ps) == 0 {
					return contracts.Yoga{}, false
				}
				for _, p := range ps {
					if !p.NaturalBenefic() {
						return contracts.Yoga{}, false
					}
				}
				return contracts.Yoga{Planets: ps}, true
			},
		},
	}
}
