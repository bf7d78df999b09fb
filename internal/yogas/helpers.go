package yogas

import (
	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/relations"
)

// kendras are the angular houses, trikonas the trines; house 1 is both.
func isKendra(h int) bool { return h == 1 || h == 4 || h == 7 || h == 10 }
func isTrikona(h int) bool { return h == 1 || h == 5 || h == 9 }
func isDusthana(h int) bool { return h == 6 || h == 8 || h == 12 }

// houseFrom counts houses from planet a's sign to planet b's sign, 1..12.
func houseFrom(ctx *contracts.ChartContext, a, b contracts.Planet) int {
	return ctx.Chart.Planets[a].Sign.DistanceTo(ctx.Chart.Planets[b].Sign)
}

// conjunct reports whether two planets share a sign.
func conjunct(ctx *contracts.ChartContext, a, b contracts.Planet) bool {
	return ctx.Chart.Planets[a].Sign == ctx.Chart.Planets[b].Sign
}

// exchange reports a Parivartana: each planet stands in a sign the other
// rules. Nodes rule no sign and never exchange.
func exchange(ctx *contracts.ChartContext, a, b contracts.Planet) bool {
	return relations.IsOwnSign(a, ctx.Chart.Planets[b].Sign) &&
		relations.IsOwnSign(b, ctx.Chart.Planets[a].Sign)
}

// dignityOf reads the precomputed dignity for a planet.
func dignityOf(ctx *contracts.ChartContext, p contracts.Planet) contracts.Dignity {
	return ctx.Relationships.Dignities[p.String()].Dignity
}

// strongPlacement reports own sign, moolatrikona or exaltation.
func strongPlacement(ctx *contracts.ChartContext, p contracts.Planet) bool {
	switch dignityOf(ctx, p) {
	case contracts.OwnSign, contracts.Moolatrikona, contracts.Exalted:
		return true
	}
	return false
}

// planetsInHouseFromMoon lists non-node planets other than the Moon itself
// standing n houses from the Moon. The Sun is excluded as the classics do
// for the lunar support yogas.
func planetsInHouseFromMoon(ctx *contracts.ChartContext, n int, includeSun bool) []contracts.Planet {
	var out []contracts.Planet
	for _, p := range contracts.SevenPlanets() {
		if p == contracts.Moon {
			continue
		}
		if p == contracts.Sun && !includeSun {
			continue
		}
		if houseFrom(ctx, contracts.Moon, p) == n {
			out = append(out, p)
		}
	}
	return out
}

// associated reports the classical lord association: conjunction, mutual
// exchange, or mutual whole-house aspect.
func associated(ctx *contracts.ChartContext, a, b contracts.Planet) bool {
	if a == b {
		return true
	}
	if conjunct(ctx, a, b) || exchange(ctx, a, b) {
		return true
	}
	return relations.AspectsPlanet(ctx.Chart, a, b) && relations.AspectsPlanet(ctx.Chart, b, a)
}

// signsOccupied counts distinct signs holding the seven classical planets.
func signsOccupied(ctx *contracts.ChartContext) int {
	var seen [contracts.SignCount]bool
	n := 0
	for _, p := range contracts.SevenPlanets() {
		s := ctx.Chart.Planets[p].Sign
		if !seen[s] {
			seen[s] = true
			n++
		}
	}
	return n
}
