package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
)

// mahapurushaRules are the five Pancha Mahapurusha yogas: one of the five
// non-luminary classical planets standing in a kendra from the ascendant in
// its own sign, moolatrikona or exaltation.
func mahapurushaRules() []Rule {
	defs := []struct {
		name         string
		planet       contracts.Planet
		significance string
	}{
		{"Ruchaka", contracts.Mars, "Mars strong in a kendra; courage, command, a soldier's frame."},
		{"Bhadra", contracts.Mercury, "Mercury strong in a kendra; intellect, speech, long-lived prosperity."},
		{"Hamsa", contracts.Jupiter, "Jupiter strong in a kendra; wisdom, piety, respect of the learned."},
		{"Malavya", contracts.Venus, "Venus strong in a kendra; refinement, comforts, artistic fortune."},
		{"Sasa", contracts.Saturn, "Saturn strong in a kendra; authority over many, discipline, late rise."},
	}

	rules := make([]Rule, 0, len(defs))
	for _, def := range defs {
		planet := def.planet
		rules = append(rules, Rule{
			Name:         def.name,
			Significance: def.significance,
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				house := ctx.Chart.Planets[planet].House
				if isKendra(house) && strongPlacement(ctx, planet) {
					return contracts.Yoga{
						Planets: []contracts.Planet{planet},
						Houses:  []int{house},
					}, true
				}
				return contracts.Yoga{}, false
			},
		})
	}
	return rules
}
