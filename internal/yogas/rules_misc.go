package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
)

// miscRules covers the node combinations, kartari pair and the remaining
// named patterns.
func miscRules() []Rule {
	return []Rule{
		{
			Name:         "Kala Sarpa",
			Significance: "All seven planets caught on one side of the Rahu-Ketu axis; a fated, swinging life arc.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				rahu := ctx.Chart.Planets[contracts.Rahu].SiderealLon
				ketu := ctx.Chart.Planets[contracts.Ketu].SiderealLon
				side := 0
				for _, p := range contracts.SevenPlanets() {
					lon := ctx.Chart.Planets[p].SiderealLon
					if onArc(rahu, ketu, lon) {
						if side == -1 {
							return contracts.Yoga{}, false
						}
						side = 1
					} else {
						if side == 1 {
							return contracts.Yoga{}, false
						}
						side = -1
					}
				}
				return contracts.Yoga{Planets: []contracts.Planet{contracts.Rahu, contracts.Ketu}}, true
			},
		},
		{
			Name:         "Guru-Chandala",
			Significance: "Jupiter conjoined with Rahu; principles bend under ambition.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				if conjunct(ctx, contracts.Jupiter, contracts.Rahu) {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Jupiter, contracts.Rahu}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Angaraka",
			Significance: "Mars conjoined with Rahu; explosive drive needing an outlet.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				if conjunct(ctx, contracts.Mars, contracts.Rahu) {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Mars, contracts.Rahu}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Shubha Kartari",
			Significance: "Benefics flank the ascendant; protection and smooth passage.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				return kartari(ctx, true)
			},
		},
		{
			Name:         "Papa Kartari",
			Significance: "Malefics flank the ascendant; hemmed in, effort under pressure.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				return kartari(ctx, false)
			},
		},
		{
			Name:         "Chatussagara",
			Significance: "All four kendras occupied; stability rivaling the four oceans.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				var houses []int
				for _, h := range []int{1, 4, 7, 10} {
					if len(ctx.Chart.PlanetsInHouse(h)) == 0 {
						return contracts.Yoga{}, false
					}
					houses = append(houses, h)
				}
				return contracts.Yoga{Houses: houses}, true
			},
		},
		{
			Name:         "Vasumati",
			Significance: "Benefics in the upachayas; wealth grows with time.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				var found []contracts.Planet
				for _, p := range []contracts.Planet{contracts.Mercury, contracts.Jupiter, contracts.Venus, contracts.Moon} {
					h := ctx.Chart.Planets[p].House
					if h == 3 || h == 6 || h == 10 || h == 11 {
						found = append(found, p)
					}
				}
				if len(found) >= 2 {
					return contracts.Yoga{Planets: found}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Graha Malika",
			Significance: "Planets strung through five or more consecutive houses; a garland of sustained results.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				var occupied [12]bool
				for _, p := range contracts.SevenPlanets() {
					occupied[ctx.Chart.Planets[p].House-1] = true
				}
				best := 0
				for start := range 12 {
					run := 0
					for off := range 12 {
						if occupied[(start+off)%12] {
							run++
						} else {
							break
						}
					}
					if run > best {
						best = run
					}
				}
				if best >= 5 {
					return contracts.Yoga{Planets: contracts.SevenPlanets()}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Parvata",
			Significance: "Benefics in kendras with the dusthanas clean; rising, durable esteem.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				var inKendras []contracts.Planet
				for _, p := range []contracts.Planet{contracts.Mercury, contracts.Jupiter, contracts.Venus, contracts.Moon} {
					if isKendra(ctx.Chart.Planets[p].House) {
						inKendras = append(inKendras, p)
					}
				}
				if len(inKendras) == 0 {
					return contracts.Yoga{}, false
				}
				for _, h := range []int{6, 8} {
					for _, p := range ctx.Chart.PlanetsInHouse(h) {
						if !p.NaturalBenefic() {
							return contracts.Yoga{}, false
						}
					}
				}
				return contracts.Yoga{Planets: inKendras}, true
			},
		},
		{
			Name:         "Mahabhagya",
			Significance: "Day birth with ascendant, Sun and Moon all in odd signs; great fortune.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				sunHouse := ctx.Chart.Planets[contracts.Sun].House
				dayBirth := sunHouse >= 7 && sunHouse <= 12
				if !dayBirth {
					return contracts.Yoga{}, false
				}
				if ctx.Chart.AscendantSign.IsOdd() &&
					ctx.Chart.Planets[contracts.Sun].Sign.IsOdd() &&
					ctx.Chart.Planets[contracts.Moon].Sign.IsOdd() {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Sun, contracts.Moon}}, true
				}
				return contracts.Yoga{}, false
			},
		},
		{
			Name:         "Guru-Mangala",
			Significance: "Jupiter and Mars conjoined or in mutual 7th; energetic wisdom.",
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				d := houseFrom(ctx, contracts.Jupiter, contracts.Mars)
				if d == 1 || d == 7 {
					return contracts.Yoga{Planets: []contracts.Planet{contracts.Jupiter, contracts.Mars}}, true
				}
				return contracts.Yoga{}, false
			},
		},
	}
}

// kartari checks the flanking pattern: 2nd and 12th houses both occupied,
// and every occupant benefic (shubha) or every occupant malefic (papa).
// The nodes count as malefics.
func kartari(ctx *contracts.ChartContext, benefic bool) (contracts.Yoga, bool) {
	var flanking []contracts.Planet
	for _, h := range []int{2, 12} {
		occupants := ctx.Chart.PlanetsInHouse(h)
		if len(occupants) == 0 {
			return contracts.Yoga{}, false
		}
		for _, p := range occupants {
			if p.NaturalBenefic() != benefic {
				return contracts.Yoga{}, false
			}
		}
		flanking = append(flanking, occupants...)
	}
	return contracts.Yoga{Planets: flanking, Houses: []int{2, 12}}, true
}

// onArc reports whether lon lies on the arc from start going forward to
// end (half-open).
func onArc(start, end, lon float64) bool {
	span := contracts.Norm360(end - start)
	off := contracts.Norm360(lon - start)
	return off < span
}
