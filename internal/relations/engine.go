// Package relations evaluates planetary relationships, essential dignities,
// combustion and whole-house Vedic aspects (drishti). Aspects here are
// discrete and full-strength; continuous-degree partial aspects belong to a
// different (western) model and are deliberately absent.
package relations

import (
	"math"

	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/pkg/logger"
)

// Engine computes the relationship report and aspect list for a chart.
type Engine struct {
	orbs      map[contracts.Planet]float64
	orbsRetro map[contracts.Planet]float64
	logger    *logger.Logger
}

// NewEngine creates an engine. orbOverrides replaces the default combustion
// orb for the named planets; pass nil to keep the classical values.
func NewEngine(orbOverrides map[contracts.Planet]float64, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	orbs := make(map[contracts.Planet]float64, len(combustOrbs))
	for p, orb := range combustOrbs {
		orbs[p] = orb
	}
	for p, orb := range orbOverrides {
		orbs[p] = orb
	}
	return &Engine{orbs: orbs, orbsRetro: combustOrbsRetro, logger: log}
}

// Relationships builds the full pairwise report plus per-planet dignities.
func (e *Engine) Relationships(chart *contracts.Chart) contracts.Relationships {
	rel := contracts.Relationships{
		Natural:   make(map[string]map[string]contracts.Relation),
		Temporal:  make(map[string]map[string]contracts.Relation),
		Compound:  make(map[string]map[string]contracts.Relation),
		Dignities: make(map[string]contracts.DignityInfo),
	}

	planets := contracts.AllPlanets()
	for _, a := range planets {
		an := a.String()
		rel.Natural[an] = make(map[string]contracts.Relation)
		rel.Temporal[an] = make(map[string]contracts.Relation)
		rel.Compound[an] = make(map[string]contracts.Relation)
		for _, b := range planets {
			if a == b {
				continue
			}
			bn := b.String()
			nat := NaturalRelation(a, b)
			tmp := temporalRelation(chart, a, b)
			rel.Natural[an][bn] = nat
			rel.Temporal[an][bn] = tmp
			rel.Compound[an][bn] = compound(nat, tmp)
		}
		rel.Dignities[an] = e.DignityOf(chart, a)
	}
	return rel
}

// temporalRelation grades b as seen from a: occupants of the 2nd, 3rd, 4th,
// 10th, 11th and 12th signs from a's sign are temporal friends, everyone
// else a temporal enemy.
func temporalRelation(chart *contracts.Chart, a, b contracts.Planet) contracts.Relation {
	dist := chart.Planets[a].Sign.DistanceTo(chart.Planets[b].Sign)
	switch dist {
	case 2, 3, 4, 10, 11, 12:
		return contracts.Friend
	}
	return contracts.Enemy
}

// compound folds natural and temporal grades into the five-fold scale.
func compound(natural, temporal contracts.Relation) contracts.Relation {
	sum := int(natural) + int(temporal)
	switch {
	case sum >= 2:
		return contracts.GreatFriend
	case sum == 1:
		return contracts.Friend
	case sum == -1:
		return contracts.Enemy
	case sum <= -2:
		return contracts.GreatEnemy
	default:
		return contracts.NeutralRelation
	}
}

// DignityOf returns a planet's essential standing in the chart, including
// combustion.
func (e *Engine) DignityOf(chart *contracts.Chart, p contracts.Planet) contracts.DignityInfo {
	pos := chart.Planets[p]
	info := contracts.DignityInfo{
		Sign:    pos.Sign,
		Degree:  pos.Degree,
		Combust: e.Combust(chart, p),
	}
	info.Dignity = dignity(p, pos.Sign, pos.Degree)
	return info
}

// dignity resolves the essential dignity ladder, most specific first.
func dignity(p contracts.Planet, sign contracts.Sign, degree float64) contracts.Dignity {
	if sign == ExaltationSign(p) {
		return contracts.Exalted
	}
	if sign == DebilitationSign(p) {
		return contracts.Debilitated
	}
	if mt, ok := moolatrikona[p]; ok && sign == mt.Sign && degree >= mt.From && degree < mt.To {
		return contracts.Moolatrikona
	}
	if IsOwnSign(p, sign) {
		return contracts.OwnSign
	}
	lord := sign.Lord()
	switch NaturalRelation(p, lord) {
	case contracts.Friend:
		return contracts.FriendSign
	case contracts.Enemy:
		return contracts.EnemySign
	}
	return contracts.NeutralSign
}

// Combust reports whether a planet sits within its combustion orb of the
// Sun. The Sun itself and the nodes are never combust.
func (e *Engine) Combust(chart *contracts.Chart, p contracts.Planet) bool {
	orb, ok := e.orbs[p]
	if !ok {
		return false
	}
	pos := chart.Planets[p]
	if pos.Retrograde {
		if tighter, ok := e.orbsRetro[p]; ok {
			orb = tighter
		}
	}
	sep := angularSeparation(pos.SiderealLon, chart.Planets[contracts.Sun].SiderealLon)
	return sep <= orb
}

// Aspects lists every whole-house drishti cast in the chart: the universal
// 7th for all nine grahas, plus the special aspects of Mars, Jupiter and
// Saturn. All are full strength.
func (e *Engine) Aspects(chart *contracts.Chart) []contracts.Aspect {
	var out []contracts.Aspect
	for _, p := range contracts.AllPlanets() {
		from := chart.Planets[p].House
		houses := []struct {
			offset int
			kind   contracts.AspectKind
		}{{7, contracts.AspectFull}}
		for _, off := range specialAspects[p] {
			houses = append(houses, struct {
				offset int
				kind   contracts.AspectKind
			}{off, contracts.AspectSpecial})
		}
		for _, h := range houses {
			target := ((from-1)+(h.offset-1))%12 + 1
			out = append(out, contracts.Aspect{
				Source:      p,
				SourceName:  p.String(),
				TargetHouse: target,
				TargetSign:  chart.HouseSign(target),
				Targets:     chart.PlanetsInHouse(target),
				Kind:        h.kind,
				Strength:    1.0,
			})
		}
	}
	return out
}

// AspectsHouse reports whether planet p casts any drishti on the given
// house in the chart.
func AspectsHouse(chart *contracts.Chart, p contracts.Planet, house int) bool {
	from := chart.Planets[p].House
	offsets := append([]int{7}, specialAspects[p]...)
	for _, off := range offsets {
		if ((from-1)+(off-1))%12+1 == house {
			return true
		}
	}
	return false
}

// AspectsPlanet reports whether a casts drishti on b's house.
func AspectsPlanet(chart *contracts.Chart, a, b contracts.Planet) bool {
	return AspectsHouse(chart, a, chart.Planets[b].House)
}

// angularSeparation returns the unsigned separation of two longitudes,
// [0, 180].
func angularSeparation(a, b float64) float64 {
	d := math.Abs(contracts.Norm360(a) - contracts.Norm360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
