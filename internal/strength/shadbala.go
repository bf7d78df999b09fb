// Package strength scores the seven classical planets: Shadbala's six-fold
// per-planet strength and the Ashtakavarga bindu matrix. Both are pure
// functions of the chart.
package strength

import (
	"math"

	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/relations"
	"github.com/wonny/jyotish/pkg/logger"
)

// Engine computes strength scores.
type Engine struct {
	relations *relations.Engine
	logger    *logger.Logger
}

// NewEngine creates a strength engine. The relations engine supplies
// dignities and aspect geometry for the positional and aspectual balas.
func NewEngine(rel *relations.Engine, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{relations: rel, logger: log}
}

// digStrongHouse maps each planet to the house where its directional
// strength peaks.
var digStrongHouse = map[contracts.Planet]int{
	contracts.Sun:     10,
	contracts.Mars:    10,
	contracts.Moon:    4,
	contracts.Venus:   4,
	contracts.Mercury: 1,
	contracts.Jupiter: 1,
	contracts.Saturn:  7,
}

// naisargika is the fixed natural-strength ranking in shashtiamsha,
// Sun strongest through Saturn weakest.
var naisargika = map[contracts.Planet]float64{
	contracts.Sun:     60,
	contracts.Moon:    51.43,
	contracts.Venus:   42.86,
	contracts.Jupiter: 34.29,
	contracts.Mercury: 25.71,
	contracts.Mars:    17.14,
	contracts.Saturn:  8.57,
}

// maxSpeed is the approximate peak direct speed per planet in deg/day,
// used to scale motional strength.
var maxSpeed = map[contracts.Planet]float64{
	contracts.Mercury: 2.2,
	contracts.Venus:   1.26,
	contracts.Mars:    0.8,
	contracts.Jupiter: 0.25,
	contracts.Saturn:  0.14,
}

// requiredBala is the classical minimum total per planet in shashtiamsha.
// Normalization scores total == required as 5.0 of 10.
var requiredBala = map[contracts.Planet]float64{
	contracts.Sun:     390,
	contracts.Moon:    360,
	contracts.Mars:    300,
	contracts.Mercury: 420,
	contracts.Jupiter: 390,
	contracts.Venus:   330,
	contracts.Saturn:  300,
}

// dayStrong planets gain temporal strength in day births, nightStrong in
// night births; Mercury is strong in both.
var dayStrong = map[contracts.Planet]bool{
	contracts.Sun: true, contracts.Jupiter: true, contracts.Venus: true,
}
var nightStrong = map[contracts.Planet]bool{
	contracts.Moon: true, contracts.Mars: true, contracts.Saturn: true,
}

// Shadbala computes the six-fold strength for the seven classical planets.
// Components are classical in shape but deliberately simplified where the
// classics pile on sub-sub-balas: kala bala carries the day/night and
// paksha parts, not the year/month/hour lord chain.
func (e *Engine) Shadbala(chart *contracts.Chart) map[string]contracts.Shadbala {
	out := make(map[string]contracts.Shadbala, 7)
	dayBirth := isDayBirth(chart)

	for _, p := range contracts.SevenPlanets() {
		pos := chart.Planets[p]

		sb := contracts.Shadbala{
			Sthana:     e.sthanaBala(chart, p),
			Dig:        digBala(chart, p),
			Kala:       kalaBala(chart, p, dayBirth),
			Chesta:     chestaBala(p, pos),
			Naisargika: naisargika[p],
			Drishti:    drishtiBala(chart, p),
		}
		sb.Total = sb.Sthana + sb.Dig + sb.Kala + sb.Chesta + sb.Naisargika + sb.Drishti
		sb.Normalized = normalize(sb.Total, requiredBala[p])
		out[p.String()] = sb
	}
	return out
}

// sthanaBala is positional strength: uchcha bala (distance from deep
// debilitation, 0..60) plus a dignity bonus from the compound standing in
// the occupied sign.
func (e *Engine) sthanaBala(chart *contracts.Chart, p contracts.Planet) float64 {
	pos := chart.Planets[p]

	debPoint := float64(int(relations.DebilitationSign(p)))*30 + debDegree(p)
	uchcha := separation(pos.SiderealLon, debPoint) / 3 // 0..60

	var bonus float64
	switch e.relations.DignityOf(chart, p).Dignity {
	case contracts.Moolatrikona:
		bonus = 45
	case contracts.OwnSign:
		bonus = 30
	case contracts.Exalted:
		bonus = 60
	case contracts.FriendSign:
		bonus = 15
	case contracts.NeutralSign:
		bonus = 7.5
	case contracts.EnemySign:
		bonus = 3.75
	case contracts.Debilitated:
		bonus = 0
	}
	return uchcha + bonus
}

// debDegree returns the deep-debilitation degree inside the sign, the same
// degree as deep exaltation in the opposite sign.
func debDegree(p contracts.Planet) float64 {
	switch p {
	case contracts.Sun:
		return 10
	case contracts.Moon:
		return 3
	case contracts.Mercury:
		return 15
	case contracts.Venus:
		return 27
	case contracts.Mars:
		return 28
	case contracts.Jupiter:
		return 5
	case contracts.Saturn:
		return 20
	}
	return 15
}

// digBala is directional strength: distance from the weakest point, the
// cusp opposite the planet's strong house, scaled to 0..60.
func digBala(chart *contracts.Chart, p contracts.Planet) float64 {
	strong := digStrongHouse[p]
	weak := (strong+5)%12 + 1 // opposite house
	weakCusp := chart.Cusps[weak-1]
	return separation(chart.Planets[p].SiderealLon, weakCusp) / 3
}

// kalaBala is temporal strength: the day/night part plus the Moon-phase
// (paksha) part, averaged to stay on the 0..60 scale.
func kalaBala(chart *contracts.Chart, p contracts.Planet, dayBirth bool) float64 {
	var natonnata float64
	switch {
	case p == contracts.Mercury:
		natonnata = 60
	case dayBirth && dayStrong[p], !dayBirth && nightStrong[p]:
		natonnata = 60
	}

	elong := separation(chart.Planets[contracts.Moon].SiderealLon,
		chart.Planets[contracts.Sun].SiderealLon)
	paksha := elong / 3 // 0..60, full at opposition
	if p.NaturalMalefic() {
		paksha = 60 - paksha
	}
	return (natonnata + paksha) / 2
}

// chestaBala is motional strength: retrograde planets score full, direct
// ones inversely to their speed. The Sun has no retrogression and takes a
// fixed middle value; the Moon's motional part follows its phase.
func chestaBala(p contracts.Planet, pos contracts.PlanetPosition) float64 {
	switch p {
	case contracts.Sun:
		return 30
	case contracts.Moon:
		return 30
	}
	if pos.Retrograde {
		return 60
	}
	max := maxSpeed[p]
	if max == 0 {
		return 30
	}
	v := pos.Speed / max
	if v > 1 {
		v = 1
	}
	return 60 * (1 - v)
}

// drishtiBala is aspectual strength: each whole-house drishti received
// counts +15 from a natural benefic, -15 from a natural malefic.
func drishtiBala(chart *contracts.Chart, p contracts.Planet) float64 {
	var score float64
	for _, other := range contracts.AllPlanets() {
		if other == p {
			continue
		}
		if relations.AspectsPlanet(chart, other, p) {
			if other.NaturalBenefic() {
				score += 15
			} else {
				score -= 15
			}
		}
	}
	return score
}

// normalize rescales total shashtiamsha to 0..10 where the classical
// required minimum scores 5.
func normalize(total, required float64) float64 {
	if required <= 0 {
		return 0
	}
	n := total / required * 5
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// separation returns the unsigned angle between two longitudes, [0, 180].
func separation(a, b float64) float64 {
	d := math.Abs(contracts.Norm360(a) - contracts.Norm360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// isDayBirth reports whether the Sun stood above the horizon: whole-sign
// houses 7 through 12.
func isDayBirth(chart *contracts.Chart) bool {
	h := chart.Planets[contracts.Sun].House
	return h >= 7 && h <= 12
}
