package varga

import (
	"errors"
	"testing"

	"github.com/wonny/jyotish/internal/contracts"
)

func TestMapLongitudeNavamsha(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want contracts.Sign
	}{
		// Fire signs count from Aries
		{"Aries first pada", 1.0, contracts.Aries},
		{"Aries second pada", 5.0, contracts.Taurus},
		{"Leo first ninth", 121.0, contracts.Aries},
		// Earth signs count from Capricorn
		{"Taurus start", 31.0, contracts.Capricorn},
		// Air signs count from Libra
		{"Gemini start", 61.0, contracts.Libra},
		// Water signs count from Cancer
		{"Cancer start", 91.0, contracts.Cancer},
		{"Cancer second ninth", 95.0, contracts.Leo},
		// Last ninth of Pisces is Pisces: vargottama corner
		{"Pisces end", 359.9, contracts.Pisces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapLongitude(tt.lon, 9); got != tt.want {
				t.Errorf("D9(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestMapLongitudeHora(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want contracts.Sign
	}{
		{"odd sign first half is solar", 10.0, contracts.Leo},      // Aries 10
		{"odd sign second half is lunar", 20.0, contracts.Cancer},  // Aries 20
		{"even sign first half is lunar", 40.0, contracts.Cancer},  // Taurus 10
		{"even sign second half is solar", 50.0, contracts.Leo},    // Taurus 20
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapLongitude(tt.lon, 2); got != tt.want {
				t.Errorf("D2(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestMapLongitudeDrekkana(t *testing.T) {
	// Thirds of Aries go to Aries, Leo, Sagittarius.
	if got := mapLongitude(5, 3); got != contracts.Aries {
		t.Errorf("D3(Aries 5) = %v, want Aries", got)
	}
	if got := mapLongitude(15, 3); got != contracts.Leo {
		t.Errorf("D3(Aries 15) = %v, want Leo", got)
	}
	if got := mapLongitude(25, 3); got != contracts.Sagittarius {
		t.Errorf("D3(Aries 25) = %v, want Sagittarius", got)
	}
}

func TestMapLongitudeDashamsha(t *testing.T) {
	// Odd signs count tenths from themselves, even from their 9th.
	if got := mapLongitude(1.5, 10); got != contracts.Aries {
		t.Errorf("D10(Aries 1.5) = %v, want Aries", got)
	}
	if got := mapLongitude(31.5, 10); got != contracts.Capricorn {
		t.Errorf("D10(Taurus 1.5) = %v, want Capricorn", got)
	}
}

func TestMapLongitudeTrimshamsha(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want contracts.Sign
	}{
		{"odd 0-5 Mars", 2, contracts.Aries},
		{"odd 5-10 Saturn", 7, contracts.Aquarius},
		{"odd 10-18 Jupiter", 15, contracts.Sagittarius},
		{"odd 18-25 Mercury", 20, contracts.Gemini},
		{"odd 25-30 Venus", 28, contracts.Libra},
		{"even 0-5 Venus", 33, contracts.Taurus},
		{"even 25-30 Mars", 58, contracts.Scorpio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapLongitude(tt.lon, 30); got != tt.want {
				t.Errorf("D30(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	chart := testChart()
	g := NewGenerator(nil)

	t.Run("D1 reproduces the rasi", func(t *testing.T) {
		dc, err := g.Generate(chart, 1)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if dc.Tag != "D1" {
			t.Errorf("Tag = %q, want D1", dc.Tag)
		}
		if dc.AscendantSign != chart.AscendantSign {
			t.Errorf("D1 asc = %v, want %v", dc.AscendantSign, chart.AscendantSign)
		}
		for _, p := range contracts.AllPlanets() {
			if dc.Signs[p] != chart.Planets[p].Sign {
				t.Errorf("D1 %s = %v, want %v", p, dc.Signs[p], chart.Planets[p].Sign)
			}
		}
	})

	t.Run("unsupported division fails", func(t *testing.T) {
		_, err := g.Generate(chart, 5)
		var ue *contracts.UnsupportedDivisionalChartError
		if !errors.As(err, &ue) {
			t.Fatalf("want UnsupportedDivisionalChartError, got %v", err)
		}
		if ue.Division != 5 {
			t.Errorf("Division = %d, want 5", ue.Division)
		}
	})

	t.Run("GenerateAll keys by tag", func(t *testing.T) {
		charts, err := g.GenerateAll(chart, []int{1, 9, 10})
		if err != nil {
			t.Fatalf("GenerateAll failed: %v", err)
		}
		for _, tag := range []string{"D1", "D9", "D10"} {
			if _, ok := charts[tag]; !ok {
				t.Errorf("missing %s", tag)
			}
		}
	})

	t.Run("every supported division maps every planet", func(t *testing.T) {
		for _, d := range SupportedDivisions {
			dc, err := g.Generate(chart, d)
			if err != nil {
				t.Fatalf("D%d: %v", d, err)
			}
			if len(dc.Signs) != contracts.PlanetCount {
				t.Errorf("D%d: %d signs, want %d", d, len(dc.Signs), contracts.PlanetCount)
			}
		}
	})
}

// testChart spreads the nine planets over distinct longitudes.
func testChart() *contracts.Chart {
	lons := map[contracts.Planet]float64{
		contracts.Sun:     135.4,
		contracts.Moon:    355.6,
		contracts.Mars:    187.2,
		contracts.Mercury: 142.8,
		contracts.Jupiter: 352.1,
		contracts.Venus:   120.9,
		contracts.Saturn:  288.3,
		contracts.Rahu:    92.5,
		contracts.Ketu:    272.5,
	}
	chart := &contracts.Chart{
		AscendantLon:  218.7,
		AscendantSign: contracts.SignOf(218.7),
	}
	for p, lon := range lons {
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
