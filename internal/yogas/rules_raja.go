package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/relations"
)

// rajaRules are the power and wealth combinations built from house
// lordships.
func rajaRules() []Rule {
	rules := []Rule{
		{
			Name:         "Raja",
			Significance: "A kendra lord and a trikona lord associated; rise to rank and authority.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				for _, kh := range []int{1, 4, 7, 10} {
					for _, th := range []int{1, 5, 9} {
						kl := ctx.Chart.HouseLord(kh)
						tl := ctx.Chart.HouseLord(th)
						if kl == tl {
							continue // same planet ruling both is a separate raja giver
						}
						if associated(ctx, kl, tl) {
							return contracts.Yoga{
								Planets: []contracts.Planet{kl, tl},
								Houses:  []int{kh, th},
							}, true
						}
					}
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Dharma-Karmadhipati",
			Significance: "Lords of the 9th and 10th associated; the strongest of the raja combinations.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				ninth := ctx.Chart.HouseLord(9)
				tenth := ctx.Chart.HouseLord(10)
				if ninth != tenth && associated(ctx, ninth, tenth) {
					return contracts.Yoga{
						Planets: []contracts.Planet{ninth, tenth},
						Houses:  []int{9, 10},
					}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Parivartana",
			Significance: "Two planets in mutual sign exchange; their houses' fortunes interlock.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				planets := contracts.SevenPlanets()
				for i, a := range planets {
					for _, b := range planets[i+1:] {
						if exchange(ctx, a, b) {
							return contracts.Yoga{Planets: []contracts.Planet{a, b}}, true
						}
					}
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Neecha Bhanga Raja",
			Significance: "A debilitation cancelled by its dispositor's placement; reversal into unusual success.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				for _, p := range contracts.SevenPlanets() {
					if dignityOf(ctx, p) != contracts.Debilitated {
						continue
					}
					// Cancellation: the debilitation sign's lord, or the lord
					// of p's exaltation sign, stands in a kendra from the
					// Moon or the ascendant.
					sign := ctx.Chart.Planets[p].Sign
					cancellers := []contracts.Planet{sign.Lord(), exaltationLord(p)}
					for _, c := range cancellers {
						if kendraFromMoonOrLagna(ctx, c) {
							return contracts.Yoga{Planets: []contracts.Planet{p, c}}, true
						}
					}
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Lakshmi",
			Significance: "The 9th lord powerfully placed in a kendra or trikona; wealth, beauty, repute.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				lord := ctx.Chart.HouseLord(9)
				house := ctx.Chart.Planets[lord].House
				if (isKendra(house) || isTrikona(house)) && strongPlacement(ctx, lord) {
					return contracts.Yoga{Planets: []contracts.Planet{lord}, Houses: []int{9, house}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Saraswati",
			Significance: "Jupiter, Venus and Mercury together in kendras, trikonas or the 2nd; learning and arts.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				trio := []contracts.Planet{contracts.Jupiter, contracts.Venus, contracts.Mercury}
				for _, p := range trio {
					h := ctx.Chart.Planets[p].House
					if !isKendra(h) && !isTrikona(h) && h != 2 {
						return contracts.Yoga{}, false
					}
				}
				return contracts.Yoga{Planets: trio}, true
			},
		},
		{
			Name:         "Kahala",
			Significance: "Lords of the 4th and 9th in mutual kendras; stubborn bravery and leadership.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				fourth := ctx.Chart.HouseLord(4)
				ninth := ctx.Chart.HouseLord(9)
				if fourth == ninth {
					return contracts.Yoga{}, false
				}
				d := houseFrom(ctx, fourth, ninth)
				if d == 1 || d == 4 || d == 7 || d == 10 {
					return contracts.Yoga{Planets: []contracts.Planet{fourth, ninth}, Houses: []int{4, 9}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Shankha",
			Significance: "Lords of the 5th and 6th in mutual kendras; enjoyment, learning, longevity.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				fifth := ctx.Chart.HouseLord(5)
				sixth := ctx.Chart.HouseLord(6)
				if fifth == sixth {
					return contracts.Yoga{}, false
				}
				d := houseFrom(ctx, fifth, sixth)
				if d == 1 || d == 4 || d == 7 || d == 10 {
					return contracts.Yoga{Planets: []contracts.Planet{fifth, sixth}, Houses: []int{5, 6}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Chamara",
			Significance: "The lagna lord exalted in a kendra under Jupiter's aspect; eloquence and honor.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				lord := ctx.Chart.HouseLord(1)
				house := ctx.Chart.Planets[lord].House
				if dignityOf(ctx, lord) == contracts.Exalted && isKendra(house) &&
					aspectedByJupiter(ctx, lord) {
					return contracts.Yoga{Planets: []contracts.Planet{lord, contracts.Jupiter}, Houses: []int{1, house}}, true
				}
				return contracts.Yoga{}, false
			},
		},
	}
	rules = append(rules, dhanaRules()...)
	return rules
}

// dhanaRules are the wealth-lord combinations.
func dhanaRules() []Rule {
	return []Rule{
		{
			Name:         "Dhana (2-11)",
			Significance: "Lords of wealth and gains swap or join houses; accumulating riches.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				second := ctx.Chart.HouseLord(2)
				eleventh := ctx.Chart.HouseLord(11)
				if second == eleventh {
					return contracts.Yoga{}, false
				}
				if ctx.Chart.Planets[second].House == 11 || ctx.Chart.Planets[eleventh].House == 2 ||
					conjunct(ctx, second, eleventh) {
					return contracts.Yoga{Planets: []contracts.Planet{second, eleventh}, Houses: []int{2, 11}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Dhana (5-9)",
			Significance: "Lords of the trines conjoined; fortune through merit and lineage.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				fifth := ctx.Chart.HouseLord(5)
				ninth := ctx.Chart.HouseLord(9)
				if fifth != ninth && conjunct(ctx, fifth, ninth) {
					return contracts.Yoga{Planets: []contracts.Planet{fifth, ninth}, Houses: []int{5, 9}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Daridra",
			Significance: "The 11th lord in a dusthana; gains leak away.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				lord := ctx.Chart.HouseLord(11)
				house := ctx.Chart.Planets[lord].House
				if isDusthana(house) {
					return contracts.Yoga{Planets: []contracts.Planet{lord}, Houses: []int{11, house}}, true
				}
				return contracts.Yoga{}, false
			},
		},
	}
}

// viparitaRules: dusthana lords in dusthanas invert their harm.
func viparitaRules() []Rule {
	defs := []struct {
		name         string
		house        int
		significance string
	}{
		{"Harsha", 6, "The 6th lord in a dusthana; health and victory over enemies."},
		{"Sarala", 8, "The 8th lord in a dusthana; fearlessness and long life."},
		{"Vimala", 12, "The 12th lord in a dusthana; frugality, independence, a clean name."},
	}
	rules := make([]Rule, 0, len(defs))
	for _, def := range defs {
		house := def.house
		rules = append(rules, Rule{
			Name:         "Viparita " + def.name,
			Significance: def.significance,
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				lord := ctx.Chart.HouseLord(house)
				placed := ctx.Chart.Planets[lord].House
				if isDusthana(placed) {
					return contracts.Yoga{Planets: []contracts.Planet{lord}, Houses: []int{house, placed}}, true
				}
				return contracts.Yoga{}, false
			},
		})
	}
	return rules
}

// exaltationLord returns the lord of the sign where p exalts.
func exaltationLord(p contracts.Planet) contracts.Planet {
	return relations.ExaltationSign(p).Lord()
}

// kendraFromMoonOrLagna reports whether p stands in a kendra counted from
// the Moon's sign or from the ascendant.
func kendraFromMoonOrLagna(ctx *contracts.ChartContext, p contracts.Planet) bool {
	fromMoon := houseFrom(ctx, contracts.Moon, p)
	if fromMoon == 1 || fromMoon == 4 || fromMoon == 7 || fromMoon == 10 {
		return true
	}
	return isKendra(ctx.Chart.Planets[p].House)
}

func aspectedByJupiter(ctx *contracts.ChartContext, p contracts.Planet) bool {
	d := houseFrom(ctx, contracts.Jupiter, p)
	return d == 7 || d == 5 || d == 9 || d == 1
}
