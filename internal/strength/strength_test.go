package strength

import (
	"testing"

	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/relations"
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

func sampleChart() *contracts.Chart {
	return chartWith(218.7, map[contracts.Planet]float64{
		contracts.Sun:     135.4,
		contracts.Moon:    355.6,
		contracts.Mars:    187.2,
		contracts.Mercury: 142.8,
		contracts.Jupiter: 352.1,
		contracts.Venus:   120.9,
		contracts.Saturn:  288.3,
		contracts.Rahu:    92.5,
		contracts.Ketu:    272.5,
	})
}

func newEngine() *Engine {
	return NewEngine(relations.NewEngine(nil, nil), nil)
}

func TestAshtakavargaTotals(t *testing.T) {
	e := newEngine()

	// The grand total is a fixed property of the tables, independent of
	// the chart.
	charts := []*contracts.Chart{
		sampleChart(),
		chartWith(10, map[contracts.Planet]float64{
			contracts.Sun: 5, contracts.Moon: 35, contracts.Mars: 65,
			contracts.Mercury: 95, contracts.Jupiter: 125, contracts.Venus: 155,
			contracts.Saturn: 185, contracts.Rahu: 215, contracts.Ketu: 35,
		}),
	}

	for i, chart := range charts {
		av := e.Ashtakavarga(chart)
		if got := av.TotalBindus(); got != 337 {
			t.Errorf("chart %d: total bindus = %d, want 337", i, got)
		}
	}
}

func TestAshtakavargaPerPlanetTotals(t *testing.T) {
	// Classical per-planet bindu totals.
	want := map[string]int{
		"Sun": 48, "Moon": 49, "Mars": 39, "Mercury": 54,
		"Jupiter": 56, "Venus": 52, "Saturn": 39,
	}

	av := newEngine().Ashtakavarga(sampleChart())
	for name, total := range want {
		row, ok := av.Bindus[name]
		if !ok {
			t.Fatalf("missing bindu row for %s", name)
		}
		var sum int
		for _, b := range row {
			sum += b
		}
		if sum != total {
			t.Errorf("%s bindu total = %d, want %d", name, sum, total)
		}
	}
}

func TestAshtakavargaRanges(t *testing.T) {
	av := newEngine().Ashtakavarga(sampleChart())

	for name, row := range av.Bindus {
		for s, b := range row {
			if b < 0 || b > 8 {
				t.Errorf("%s sign %d: bindus = %d, want 0..8", name, s, b)
			}
		}
	}
	for s, b := range av.Sarva {
		if b < 0 || b > 56 {
			t.Errorf("sarva sign %d = %d, want 0..56", s, b)
		}
	}
}

func TestShadbalaShape(t *testing.T) {
	e := newEngine()
	bala := e.Shadbala(sampleChart())

	if len(bala) != 7 {
		t.Fatalf("shadbala entries = %d, want 7", len(bala))
	}
	for _, p := range contracts.SevenPlanets() {
		sb, ok := bala[p.String()]
		if !ok {
			t.Fatalf("missing shadbala for %s", p)
		}
		if sb.Normalized < 0 || sb.Normalized > 10 {
			t.Errorf("%s normalized = %v, want 0..10", p, sb.Normalized)
		}
		sum := sb.Sthana + sb.Dig + sb.Kala + sb.Chesta + sb.Naisargika + sb.Drishti
		if diff := sum - sb.Total; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s total %v does not match component sum %v", p, sb.Total, sum)
		}
	}

	// The nodes are not scored.
	if _, ok := bala["Rahu"]; ok {
		t.Error("Rahu should not carry shadbala")
	}
}

func TestNaisargikaOrdering(t *testing.T) {
	// The natural ranking is fixed: Sun > Moon > Venus > Jupiter > Mercury
	// > Mars > Saturn.
	bala := newEngine().Shadbala(sampleChart())
	order := []contracts.Planet{
		contracts.Sun, contracts.Moon, contracts.Venus, contracts.Jupiter,
		contracts.Mercury, contracts.Mars, contracts.Saturn,
	}
	for i := 1; i < len(order); i++ {
		hi := bala[order[i-1].String()].Naisargika
		lo := bala[order[i].String()].Naisargika
		if hi <= lo {
			t.Errorf("naisargika(%v)=%v should exceed naisargika(%v)=%v",
				order[i-1], hi, order[i], lo)
		}
	}
}

func TestSthanaBalaPrefersExaltation(t *testing.T) {
	e := newEngine()

	exalted := chartWith(10, map[contracts.Planet]float64{
		contracts.Sun: 10, // deep exaltation, Aries 10
		contracts.Moon: 45, contracts.Mars: 75, contracts.Mercury: 105,
		contracts.Jupiter: 135, contracts.Venus: 165, contracts.Saturn: 195,
		contracts.Rahu: 225, contracts.Ketu: 45,
	})
	debilitated := chartWith(10, map[contracts.Planet]float64{
		contracts.Sun: 190, // deep debilitation, Libra 10
		contracts.Moon: 45, contracts.Mars: 75, contracts.Mercury: 105,
		contracts.Jupiter: 135, contracts.Venus: 165, contracts.Saturn: 15,
		contracts.Rahu: 225, contracts.Ketu: 45,
	})

	hi := e.sthanaBala(exalted, contracts.Sun)
	lo := e.sthanaBala(debilitated, contracts.Sun)
	if hi <= lo {
		t.Errorf("exalted sthana %v should exceed debilitated %v", hi, lo)
	}
	if lo > 1 {
		t.Errorf("deep debilitation sthana = %v, want ~0", lo)
	}
	if hi < 115 {
		t.Errorf("deep exaltation sthana = %v, want 120ish", hi)
	}
}

func TestChestaBala(t *testing.T) {
	retro := contracts.PlanetPosition{Planet: contracts.Mars, Speed: -0.2, Retrograde: true}
	if got := chestaBala(contracts.Mars, retro); got != 60 {
		t.Errorf("retrograde chesta = %v, want 60", got)
	}

	fast := contracts.PlanetPosition{Planet: contracts.Mars, Speed: 0.8}
	if got := chestaBala(contracts.Mars, fast); got > 1 {
		t.Errorf("full-speed chesta = %v, want ~0", got)
	}

	slow := contracts.PlanetPosition{Planet: contracts.Mars, Speed: 0.1}
	if got := chestaBala(contracts.Mars, slow); got < 40 {
		t.Errorf("slow direct chesta = %v, want > 40", got)
	}
}

func TestIsDayBirth(t *testing.T) {
	day := sampleChart() // Sun in Leo, asc Scorpio: house 10
	if !isDayBirth(day) {
		t.Error("Sun in house 10 is a day birth")
	}

	night := chartWith(130, map[contracts.Planet]float64{
		contracts.Sun: 160, // second sign from a Leo ascendant
	})
	if isDayBirth(night) {
		t.Error("Sun in house 2 is a night birth")
	}
}
