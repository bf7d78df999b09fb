// Package varga derives divisional charts from the rasi chart. Every
// mapping is a pure function of the D1 sidereal longitudes; divisional
// charts carry no houses or strength of their own.
package varga

import (
	"fmt"

	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/pkg/logger"
)

// SupportedDivisions lists the D-n charts the generator has rules for.
var SupportedDivisions = []int{1, 2, 3, 4, 7, 9, 10, 12, 16, 30, 60}

// Generator maps D1 longitudes to divisional signs.
type Generator struct {
	logger *logger.Logger
}

// NewGenerator creates a divisional chart generator.
func NewGenerator(log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{logger: log}
}

// Supported reports whether a D-n division has mapping rules.
func Supported(division int) bool {
	for _, d := range SupportedDivisions {
		if d == division {
			return true
		}
	}
	return false
}

// Generate derives one divisional chart from the rasi chart.
func (g *Generator) Generate(chart *contracts.Chart, division int) (contracts.DivisionalChart, error) {
	if !Supported(division) {
		return contracts.DivisionalChart{}, &contracts.UnsupportedDivisionalChartError{Division: division}
	}

	dc := contracts.DivisionalChart{
		Division:      division,
		Tag:           fmt.Sprintf("D%d", division),
		AscendantSign: mapLongitude(chart.AscendantLon, division),
		Signs:         make(map[contracts.Planet]contracts.Sign, contracts.PlanetCount),
	}
	for _, p := range contracts.AllPlanets() {
		dc.Signs[p] = mapLongitude(chart.Planets[p].SiderealLon, division)
	}

	g.logger.WithFields(map[string]interface{}{
		"division": dc.Tag,
		"asc":      dc.AscendantSign.String(),
	}).Debug("generated divisional chart")

	return dc, nil
}

// GenerateAll derives the requested set, keyed by tag ("D9").
func (g *Generator) GenerateAll(chart *contracts.Chart, divisions []int) (map[string]contracts.DivisionalChart, error) {
	out := make(map[string]contracts.DivisionalChart, len(divisions))
	for _, d := range divisions {
		dc, err := g.Generate(chart, d)
		if err != nil {
			return nil, err
		}
		out[dc.Tag] = dc
	}
	return out, nil
}

// mapLongitude applies the classical varga rules for one longitude.
func mapLongitude(lon float64, division int) contracts.Sign {
	sign := contracts.SignOf(lon)
	deg := contracts.DegreeInSign(lon)

	switch division {
	case 1:
		return sign

	case 2:
		// Hora: odd signs give the first half to the Sun (Leo), the second
		// to the Moon (Cancer); even signs the reverse.
		first := deg < 15
		if sign.IsOdd() == first {
			return contracts.Leo
		}
		return contracts.Cancer

	case 3:
		// Drekkana: thirds go to the sign itself, the 5th and the 9th.
		part := partIndex(deg, 3)
		return sign.Add(part * 4)

	case 4:
		// Chaturthamsha: quarters to the 1st, 4th, 7th and 10th.
		part := partIndex(deg, 4)
		return sign.Add(part * 3)

	case 7:
		// Saptamsha: odd signs count from the sign, even from its 7th.
		part := partIndex(deg, 7)
		start := sign
		if !sign.IsOdd() {
			start = sign.Add(6)
		}
		return start.Add(part)

	case 9:
		// Navamsha: ninths count from the element's cardinal sign.
		part := partIndex(deg, 9)
		return navamshaStart(sign).Add(part)

	case 10:
		// Dashamsha: odd signs count from the sign, even from its 9th.
		part := partIndex(deg, 10)
		start := sign
		if !sign.IsOdd() {
			start = sign.Add(8)
		}
		return start.Add(part)

	case 12:
		// Dwadashamsha: twelfths count from the sign itself.
		part := partIndex(deg, 12)
		return sign.Add(part)

	case 16:
		// Shodashamsha: movable from Aries, fixed from Leo, dual from
		// Sagittarius.
		part := partIndex(deg, 16)
		switch quality(sign) {
		case 0:
			return contracts.Aries.Add(part)
		case 1:
			return contracts.Leo.Add(part)
		default:
			return contracts.Sagittarius.Add(part)
		}

	case 30:
		return trimshamsha(sign, deg)

	case 60:
		// Shashtiamsha: sixtieths count from the sign itself.
		part := partIndex(deg, 60)
		return sign.Add(part)
	}
	return sign
}

// partIndex returns which of n equal parts of a 30 degree sign the degree
// falls in, half-open bins.
func partIndex(deg float64, n int) int {
	idx := int(deg / (30.0 / float64(n)))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// navamshaStart returns the cardinal sign of the element trine: fire signs
// count from Aries, earth from Capricorn, air from Libra, water from Cancer.
func navamshaStart(s contracts.Sign) contracts.Sign {
	switch int(s) % 4 {
	case 0: // fire
		return contracts.Aries
	case 1: // earth
		return contracts.Capricorn
	case 2: // air
		return contracts.Libra
	default: // water
		return contracts.Cancer
	}
}

// quality returns 0 movable, 1 fixed, 2 dual.
func quality(s contracts.Sign) int {
	return int(s) % 3
}

// trimshamshaOdd lists the unequal D30 spans for odd signs: Mars 5, Saturn
// 5, Jupiter 8, Mercury 7, Venus 5 degrees, mapped to the lords' signs.
var trimshamshaOdd = []struct {
	upTo float64
	sign contracts.Sign
}{
	{5, contracts.Aries},
	{10, contracts.Aquarius},
	{18, contracts.Sagittarius},
	{25, contracts.Gemini},
	{30, contracts.Libra},
}

// trimshamshaEven reverses the order for even signs.
var trimshamshaEven = []struct {
	upTo float64
	sign contracts.Sign
}{
	{5, contracts.Taurus},
	{12, contracts.Virgo},
	{20, contracts.Pisces},
	{25, contracts.Capricorn},
	{30, contracts.Scorpio},
}

func trimshamsha(s contracts.Sign, deg float64) contracts.Sign {
	table := trimshamshaOdd
	if !s.IsOdd() {
		table = trimshamshaEven
	}
	for _, row := range table {
		if deg < row.upTo {
			return row.sign
		}
	}
	return table[len(table)-1].sign
}
