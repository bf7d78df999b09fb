package strength

import "github.com/wonny/jyotish/internal/contracts"

// Ashtakavarga contributors in table order: the seven classical planets
// plus the ascendant.
const contributorCount = 8

// beneficPlaces holds the classical bhinnashtakavarga tables: for each
// scored planet, eight rows of benefic house counts (1..12) measured from
// each contributor's sign, rows ordered Sun, Moon, Mars, Mercury, Jupiter,
// Venus, Saturn, Ascendant. The row sums total 337 across all seven tables.
var beneficPlaces = map[contracts.Planet][contributorCount][]int{
	contracts.Sun: {
		{1, 2, 4, 7, 8, 9, 10, 11},    // from Sun
		{3, 6, 10, 11},                // from Moon
		{1, 2, 4, 7, 8, 9, 10, 11},    // from Mars
		{3, 5, 6, 9, 10, 11, 12},      // from Mercury
		{5, 6, 9, 11},                 // from Jupiter
		{6, 7, 12},                    // from Venus
		{1, 2, 4, 7, 8, 9, 10, 11},    // from Saturn
		{3, 4, 6, 10, 11, 12},         // from Ascendant
	},
	contracts.Moon: {
		{3, 6, 7, 8, 10, 11},
		{1, 3, 6, 7, 10, 11},
		{2, 3, 5, 6, 9, 10, 11},
		{1, 3, 4, 5, 7, 8, 10, 11},
		{1, 4, 7, 8, 10, 11, 12},
		{3, 4, 5, 7, 9, 10, 11},
		{3, 5, 6, 11},
		{3, 6, 10, 11},
	},
	contracts.Mars: {
		{3, 5, 6, 10, 11},
		{3, 6, 11},
		{1, 2, 4, 7, 8, 10, 11},
		{3, 5, 6, 11},
		{6, 10, 11, 12},
		{6, 8, 11, 12},
		{1, 4, 7, 8, 9, 10, 11},
		{1, 3, 6, 10, 11},
	},
	contracts.Mercury: {
		{5, 6, 9, 11, 12},
		{2, 4, 6, 8, 10, 11},
		{1, 2, 4, 7, 8, 9, 10, 11},
		{1, 3, 5, 6, 9, 10, 11, 12},
		{6, 8, 11, 12},
		{1, 2, 3, 4, 5, 8, 9, 11},
		{1, 2, 4, 7, 8, 9, 10, 11},
		{1, 2, 4, 6, 8, 10, 11},
	},
	contracts.Jupiter: {
		{1, 2, 3, 4, 7, 8, 9, 10, 11},
		{2, 5, 7, 9, 11},
		{1, 2, 4, 7, 8, 10, 11},
		{1, 2, 4, 5, 6, 9, 10, 11},
		{1, 2, 3, 4, 7, 8, 10, 11},
		{2, 5, 6, 9, 10, 11},
		{3, 5, 6, 12},
		{1, 2, 4, 5, 6, 7, 9, 10, 11},
	},
	contracts.Venus: {
		{8, 11, 12},
		{1, 2, 3, 4, 5, 8, 9, 11, 12},
		{3, 5, 6, 9, 11, 12},
		{3, 5, 6, 9, 11},
		{5, 8, 9, 10, 11},
		{1, 2, 3, 4, 5, 8, 9, 10, 11},
		{3, 4, 5, 8, 9, 10, 11},
		{1, 2, 3, 4, 5, 8, 9, 11},
	},
	contracts.Saturn: {
		{1, 2, 4, 7, 8, 10, 11},
		{3, 6, 11},
		{3, 5, 6, 10, 11, 12},
		{6, 8, 9, 10, 11, 12},
		{5, 6, 11, 12},
		{6, 11, 12},
		{3, 5, 6, 11},
		{1, 3, 4, 6, 10, 11},
	},
}

// Ashtakavarga casts the eight contributors' bindus for each of the seven
// classical planets and totals the sarvashtakavarga per sign.
func (e *Engine) Ashtakavarga(chart *contracts.Chart) contracts.Ashtakavarga {
	av := contracts.Ashtakavarga{
		Bindus: make(map[string][contracts.SignCount]int, 7),
	}

	contributorSigns := [contributorCount]contracts.Sign{
		chart.Planets[contracts.Sun].Sign,
		chart.Planets[contracts.Moon].Sign,
		chart.Planets[contracts.Mars].Sign,
		chart.Planets[contracts.Mercury].Sign,
		chart.Planets[contracts.Jupiter].Sign,
		chart.Planets[contracts.Venus].Sign,
		chart.Planets[contracts.Saturn].Sign,
		chart.AscendantSign,
	}

	for _, p := range contracts.SevenPlanets() {
		var row [contracts.SignCount]int
		table := beneficPlaces[p]
		for c := range contributorCount {
			from := contributorSigns[c]
			for _, house := range table[c] {
				row[from.Add(house-1)]++
			}
		}
		av.Bindus[p.String()] = row
		for s, b := range row {
			av.Sarva[s] += b
		}
	}

	e.logger.WithField("total_bindus", av.TotalBindus()).Debug("cast ashtakavarga")
	return av
}
