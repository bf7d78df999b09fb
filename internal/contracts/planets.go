package contracts

// Planet identifies one of the nine grahas used throughout the engine.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Ketu
)

// PlanetCount is the number of grahas in a chart.
const PlanetCount = 9

var planetNames = [PlanetCount]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Rahu", "Ketu",
}

// String returns the planet's English name.
func (p Planet) String() string {
	if p < 0 || int(p) >= PlanetCount {
		return "Unknown"
	}
	return planetNames[p]
}

// Valid reports whether p is one of the nine grahas.
func (p Planet) Valid() bool {
	return p >= 0 && int(p) < PlanetCount
}

// IsNode reports whether p is a lunar node (Rahu or Ketu).
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// AllPlanets lists the nine grahas in canonical chart order.
func AllPlanets() []Planet {
	return []Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}
}

// SevenPlanets lists the seven classical planets (no nodes), the set that
// casts Ashtakavarga bindus and carries Shadbala.
func SevenPlanets() []Planet {
	return []Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}
}

// NaturalBenefic reports whether p is a natural benefic. Mercury and the
// Moon are conditional benefics in the classics; the engine treats them as
// benefic at this level and lets context-sensitive rules refine.
func (p Planet) NaturalBenefic() bool {
	switch p {
	case Jupiter, Venus, Mercury, Moon:
		return true
	}
	return false
}

// NaturalMalefic reports whether p is a natural malefic.
func (p Planet) NaturalMalefic() bool {
	switch p {
	case Sun, Mars, Saturn, Rahu, Ketu:
		return true
	}
	return false
}
