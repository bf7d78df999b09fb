package relations

import (
	"testing"

	"github.com/wonny/jyotish/internal/contracts"
)

// chartWith builds a whole-sign chart from sidereal longitudes.
func chartWith(ascLon float64, lons map[contracts.Planet]float64) *contracts.Chart {
	chart := &contracts.Chart{
		AscendantLon:  ascLon,
		AscendantSign: contracts.SignOf(ascLon),
		HouseSystem:   contracts.HouseWholeSign,
	}
	for i := range 12 {
		chart.Cusps[i] = float64(int(chart.AscendantSign.Add(i)) * 30)
	}
	for _, p := range contracts.AllPlanets() {
		lon := lons[p]
		sign := contracts.SignOf(lon)
		chart.Planets[p] = contracts.PlanetPosition{
			Planet:      p,
			Name:        p.String(),
			SiderealLon: lon,
			Sign:        sign,
			Degree:      contracts.DegreeInSign(lon),
			House:       chart.AscendantSign.DistanceTo(sign),
		}
	}
	return chart
}

func TestNaturalRelation(t *testing.T) {
	tests := []struct {
		a, b contracts.Planet
		want contracts.Relation
	}{
		{contracts.Sun, contracts.Moon, contracts.Friend},
		{contracts.Sun, contracts.Saturn, contracts.Enemy},
		{contracts.Sun, contracts.Mercury, contracts.NeutralRelation},
		{contracts.Venus, contracts.Saturn, contracts.Friend},
		{contracts.Saturn, contracts.Sun, contracts.Enemy},
		{contracts.Moon, contracts.Saturn, contracts.NeutralRelation},
	}
	for _, tt := range tests {
		if got := NaturalRelation(tt.a, tt.b); got != tt.want {
			t.Errorf("NaturalRelation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNaturalRelationIsNotSymmetric(t *testing.T) {
	// The classical table is directional: the Moon befriends no enemy, yet
	// Mercury counts the Moon an enemy.
	if got := NaturalRelation(contracts.Moon, contracts.Mercury); got != contracts.Friend {
		t.Errorf("Moon->Mercury = %v, want Friend", got)
	}
	if got := NaturalRelation(contracts.Mercury, contracts.Moon); got != contracts.Enemy {
		t.Errorf("Mercury->Moon = %v, want Enemy", got)
	}
}

func TestExaltationDebilitationOpposition(t *testing.T) {
	for _, p := range contracts.AllPlanets() {
		ex := ExaltationSign(p)
		deb := DebilitationSign(p)
		if ex.Add(6) != deb {
			t.Errorf("%v: debilitation %v is not opposite exaltation %v", p, deb, ex)
		}
	}
}

func TestDignityOf(t *testing.T) {
	lons := map[contracts.Planet]float64{
		contracts.Sun:     10,            // Aries 10, deep exaltation
		contracts.Moon:    213,           // Scorpio, debilitated
		contracts.Mars:    5,             // Aries 5, moolatrikona (0-12)
		contracts.Mercury: 85,            // Gemini, own sign
		contracts.Jupiter: 125,           // Leo, friend's sign
		contracts.Venus:   135,           // Leo, enemy's sign
		contracts.Saturn:  65,            // Gemini, friend's sign
		contracts.Rahu:    45,            // Taurus, exalted
		contracts.Ketu:    225,           // Scorpio, exalted
	}
	chart := chartWith(95, lons)
	e := NewEngine(nil, nil)

	tests := []struct {
		p    contracts.Planet
		want contracts.Dignity
	}{
		{contracts.Sun, contracts.Exalted},
		{contracts.Moon, contracts.Debilitated},
		{contracts.Mars, contracts.Moolatrikona},
		{contracts.Mercury, contracts.OwnSign},
		{contracts.Jupiter, contracts.FriendSign},
		{contracts.Venus, contracts.EnemySign},
		{contracts.Rahu, contracts.Exalted},
		{contracts.Ketu, contracts.Exalted},
	}
	for _, tt := range tests {
		got := e.DignityOf(chart, tt.p)
		if got.Dignity != tt.want {
			t.Errorf("DignityOf(%v) = %v, want %v", tt.p, got.Dignity, tt.want)
		}
	}
}

func TestCombust(t *testing.T) {
	base := map[contracts.Planet]float64{
		contracts.Sun:     100,
		contracts.Moon:    250,
		contracts.Mars:    300,
		contracts.Mercury: 108, // 8 degrees from the Sun, inside 14
		contracts.Jupiter: 200,
		contracts.Venus:   111, // 11 degrees out, outside 10
		contracts.Saturn:  40,
		contracts.Rahu:    102, // nodes never combust
		contracts.Ketu:    282,
	}
	chart := chartWith(10, base)
	e := NewEngine(nil, nil)

	if !e.Combust(chart, contracts.Mercury) {
		t.Error("Mercury at 8 degrees should be combust")
	}
	if e.Combust(chart, contracts.Venus) {
		t.Error("Venus at 11 degrees should not be combust")
	}
	if e.Combust(chart, contracts.Sun) {
		t.Error("the Sun is never combust")
	}
	if e.Combust(chart, contracts.Rahu) {
		t.Error("Rahu is never combust")
	}
}

func TestCombustRetrogradeTightensOrb(t *testing.T) {
	lons := map[contracts.Planet]float64{
		contracts.Sun:     100,
		contracts.Venus:   109, // 9 degrees: combust direct (orb 10), not retrograde (orb 8)
		contracts.Moon:    20,
		contracts.Mars:    200,
		contracts.Mercury: 230,
		contracts.Jupiter: 260,
		contracts.Saturn:  290,
		contracts.Rahu:    320,
		contracts.Ketu:    140,
	}
	chart := chartWith(10, lons)
	e := NewEngine(nil, nil)

	if !e.Combust(chart, contracts.Venus) {
		t.Error("direct Venus at 9 degrees should be combust")
	}

	pos := chart.Planets[contracts.Venus]
	pos.Retrograde = true
	chart.Planets[contracts.Venus] = pos
	if e.Combust(chart, contracts.Venus) {
		t.Error("retrograde Venus at 9 degrees should escape the tighter orb")
	}
}

func TestCombustOrbOverride(t *testing.T) {
	lons := map[contracts.Planet]float64{
		contracts.Sun:     100,
		contracts.Jupiter: 113, // 13 degrees out, beyond the default 11
		contracts.Moon:    20,
		contracts.Mars:    200,
		contracts.Mercury: 230,
		contracts.Venus:   260,
		contracts.Saturn:  290,
		contracts.Rahu:    320,
		contracts.Ketu:    140,
	}
	chart := chartWith(10, lons)

	if NewEngine(nil, nil).Combust(chart, contracts.Jupiter) {
		t.Error("Jupiter at 13 degrees should not be combust on default orbs")
	}
	wide := NewEngine(map[contracts.Planet]float64{contracts.Jupiter: 15}, nil)
	if !wide.Combust(chart, contracts.Jupiter) {
		t.Error("Jupiter at 13 degrees should be combust with a 15 degree orb")
	}
}

func TestTemporalAndCompound(t *testing.T) {
	lons := map[contracts.Planet]float64{
		contracts.Sun:     15,  // Aries
		contracts.Moon:    45,  // Taurus, 2nd from Sun: temporal friend
		contracts.Mars:    195, // Libra, 7th from Sun: temporal enemy
		contracts.Mercury: 230,
		contracts.Jupiter: 260,
		contracts.Venus:   290,
		contracts.Saturn:  320,
		contracts.Rahu:    350,
		contracts.Ketu:    170,
	}
	chart := chartWith(100, lons)
	e := NewEngine(nil, nil)
	rel := e.Relationships(chart)

	if got := rel.Temporal["Sun"]["Moon"]; got != contracts.Friend {
		t.Errorf("temporal Sun->Moon = %v, want Friend", got)
	}
	if got := rel.Temporal["Sun"]["Mars"]; got != contracts.Enemy {
		t.Errorf("temporal Sun->Mars = %v, want Enemy", got)
	}

	// Natural friend + temporal friend compounds to great friend.
	if got := rel.Compound["Sun"]["Moon"]; got != contracts.GreatFriend {
		t.Errorf("compound Sun->Moon = %v, want GreatFriend", got)
	}
	// Natural friend + temporal enemy cancels to neutral.
	if got := rel.Compound["Sun"]["Mars"]; got != contracts.NeutralRelation {
		t.Errorf("compound Sun->Mars = %v, want Neutral", got)
	}
}

func TestAspects(t *testing.T) {
	lons := map[contracts.Planet]float64{
		contracts.Sun:     15,  // house 1 (asc Aries)
		contracts.Moon:    45,
		contracts.Mars:    75,  // house 3
		contracts.Mercury: 105,
		contracts.Jupiter: 135, // house 5
		contracts.Venus:   165,
		contracts.Saturn:  195, // house 7
		contracts.Rahu:    225,
		contracts.Ketu:    45,
	}
	chart := chartWith(5, lons)
	e := NewEngine(nil, nil)

	aspects := e.Aspects(chart)

	// 9 planets cast the 7th; Mars, Jupiter and Saturn add two each.
	if len(aspects) != 9+6 {
		t.Errorf("aspect count = %d, want 15", len(aspects))
	}

	// Mars in house 3 casts 4th onto house 6, 7th onto 9, 8th onto 10.
	wantMars := map[int]bool{6: true, 9: true, 10: true}
	for _, a := range aspects {
		if a.Source != contracts.Mars {
			continue
		}
		if !wantMars[a.TargetHouse] {
			t.Errorf("unexpected Mars aspect on house %d", a.TargetHouse)
		}
		delete(wantMars, a.TargetHouse)
	}
	if len(wantMars) != 0 {
		t.Errorf("missing Mars aspects on houses %v", wantMars)
	}

	// Saturn in house 7 casts the 7th onto house 1, where the Sun sits.
	if !AspectsPlanet(chart, contracts.Saturn, contracts.Sun) {
		t.Error("Saturn in 7 should aspect the Sun in 1")
	}
	if AspectsPlanet(chart, contracts.Sun, contracts.Mars) {
		t.Error("Sun in 1 should not aspect Mars in 3")
	}
}
