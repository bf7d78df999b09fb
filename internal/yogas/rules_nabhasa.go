package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
)

// nabhasaRules are the pattern yogas of the Nabhasa group: the sankhya
// (count of occupied signs) series and the ashraya (sign quality) trio.
// They apply to every chart, one sankhya always matching.
func nabhasaRules() []Rule {
	rules := []Rule{}

	sankhya := []struct {
		name         string
		signs        int
		significance string
	}{
		{"Gola", 1, "All seven planets in one sign; a narrow, intense life channel."},
		{"Yuga", 2, "Seven planets in two signs; dependence on patrons."},
		{"Shoola", 3, "Seven planets in three signs; sharp, combative, focused effort."},
		{"Kedara", 4, "Seven planets in four signs; agrarian steadiness, useful to many."},
		{"Pasha", 5, "Seven planets in five signs; acquisitive, tangled in obligations."},
		{"Dama", 6, "Seven planets in six signs; charitable, cooperative breadth."},
		{"Veena", 7, "Seven planets spread over seven signs; versatile, artistic plenty."},
	}
	for _, def := range sankhya {
		count := def.signs
		rules = append(rules, Rule{
			Name:         def.name,
			Significance: def.significance,
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				if signsOccupied(ctx) == count {
					return contracts.Yoga{Planets: contracts.SevenPlanets()}, true
				}
				return contracts.Yoga{}, false
			},
		})
	}

	ashraya := []struct {
		name         string
		quality      int // 0 movable, 1 fixed, 2 dual
		significance string
	}{
		{"Rajju", 0, "All planets in movable signs; wandering, restless gains."},
		{"Musala", 1, "All planets in fixed signs; pride, wealth, immobility."},
		{"Nala", 2, "All planets in dual signs; resourceful but uneven."},
	}
	for _, def := range ashraya {
		q := def.quality
		rules = append(rules, Rule{
			Name:         def.name,
			Significance: def.significance,
			Detect: func(ctx *contracts.ChartContext) (contracts.Yoga, bool) {
				for _, p := range contracts.SevenPlanets() {
					if int(ctx.Chart.Planets[p].Sign)%3 != q {
						return contracts.Yoga{}, false
					}
				}
				return contracts.Yoga{Planets: contracts.SevenPlanets()}, true
			},
		})
	}

	return rules
}
