package contracts

// PlanetPosition is one graha's computed place in the natal sky. Derived,
// immutable, recomputed per request.
type PlanetPosition struct {
	Planet      Planet    `json:"planet"`
	Name        string    `json:"name"`
	TropicalLon float64   `json:"tropical_lon"`
	SiderealLon float64   `json:"sidereal_lon"`
	Latitude    float64   `json:"latitude"`
	Distance    float64   `json:"distance_au"`
	Speed       float64   `json:"speed"` // deg/day, negative while retrograde
	Retrograde  bool      `json:"retrograde"`
	Sign        Sign      `json:"sign"`
	SignName    string    `json:"sign_name"`
	Degree      float64   `json:"degree"` // inside sign, [0, 30)
	Nakshatra   Nakshatra `json:"nakshatra"`
	Pada        int       `json:"pada"`
	House       int       `json:"house"` // 1..12
}

// Chart is the rasi (D1) chart: ascendant, cusps and the nine positions.
type Chart struct {
	Moment         BirthMoment               `json:"moment"`
	AscendantLon   float64                   `json:"ascendant"`
	AscendantSign  Sign                      `json:"ascendant_sign"`
	Cusps          [12]float64               `json:"cusps"`
	Planets        [PlanetCount]PlanetPosition `json:"planets"`
	HouseSystem    HouseSystem               `json:"house_system"`
	Ayanamsha      AyanamshaModel            `json:"ayanamsha"`
	AyanamshaValue float64                   `json:"ayanamsha_value"`
}

// Position returns the chart's entry for a planet.
func (c *Chart) Position(p Planet) PlanetPosition {
	return c.Planets[p]
}

// HouseSign returns the sign occupying a whole-sign house, 1..12.
func (c *Chart) HouseSign(house int) Sign {
	return c.AscendantSign.Add(house - 1)
}

// HouseLord returns the ruling planet of a whole-sign house.
func (c *Chart) HouseLord(house int) Planet {
	return c.HouseSign(house).Lord()
}

// HouseOf returns the whole-sign house a planet occupies.
func (c *Chart) HouseOf(p Planet) int {
	return c.Planets[p].House
}

// PlanetsInHouse lists grahas occupying a house, in canonical order.
func (c *Chart) PlanetsInHouse(house int) []Planet {
	var in []Planet
	for _, p := range AllPlanets() {
		if c.Planets[p].House == house {
			in = append(in, p)
		}
	}
	return in
}

// PlanetsInSign lists grahas occupying a sign, in canonical order.
func (c *Chart) PlanetsInSign(s Sign) []Planet {
	var in []Planet
	for _, p := range AllPlanets() {
		if c.Planets[p].Sign == s {
			in = append(in, p)
		}
	}
	return in
}

// DivisionalChart is a derived varga mapping. It carries no houses or
// strength of its own unless a caller computes them separately.
type DivisionalChart struct {
	Division      int             `json:"division"` // n in D-n
	Tag           string          `json:"tag"`      // "D9"
	AscendantSign Sign            `json:"ascendant_sign"`
	Signs         map[Planet]Sign `json:"signs"`
}

// ChartResult is the complete engine output for one birth request. It is a
// pure value: identical requests produce identical results, so callers may
// memoize it indefinitely by request key.
type ChartResult struct {
	Moment           BirthMoment                `json:"moment"`
	Ascendant        float64                    `json:"ascendant"`
	AscendantSign    Sign                       `json:"ascendant_sign"`
	Planets          []PlanetPosition           `json:"planets"`
	HouseSystem      HouseSystem                `json:"house_system"`
	Ayanamsha        AyanamshaModel             `json:"ayanamsha"`
	AyanamshaValue   float64                    `json:"ayanamsha_value"`
	Cusps            [12]float64                `json:"cusps"`
	DivisionalCharts map[string]DivisionalChart `json:"divisional_charts"`
	DashaTree        DashaTree                  `json:"dasha_tree"`
	Shadbala         map[string]Shadbala        `json:"shadbala"`
	Ashtakavarga     Ashtakavarga               `json:"ashtakavarga"`
	Relationships    Relationships              `json:"relationships"`
	Aspects          []Aspect                   `json:"aspects"`
	Yogas            []Yoga                     `json:"yogas"`
}

// ChartContext bundles everything the yoga registry evaluates against.
type ChartContext struct {
	Chart         *Chart
	Vargas        map[string]DivisionalChart
	Relationships *Relationships
	Shadbala      map[string]Shadbala
}
