// Package houses computes the ascendant and house cusps. Whole Sign is the
// default and works at any latitude; Placidus and Koch are quadrant systems
// and degenerate inside the polar circles.
package houses

import (
	"math"

	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/ephemeris"
	"github.com/wonny/jyotish/pkg/logger"
)

// polarLimit is the latitude beyond which quadrant systems are refused.
const polarLimit = 66.5

// placidusIterations is enough for convergence to well under an arcsecond.
const placidusIterations = 20

// Calculator computes cusps for one house system, bound at configuration
// time.
type Calculator struct {
	system contracts.HouseSystem
	logger *logger.Logger
}

// New returns a calculator, or ConfigurationError for an unknown system.
func New(system contracts.HouseSystem, log *logger.Logger) (*Calculator, error) {
	if !system.Valid() {
		return nil, &contracts.ConfigurationError{Setting: "house_system", Value: string(system)}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Calculator{system: system, logger: log}, nil
}

// System returns the bound house system.
func (c *Calculator) System() contracts.HouseSystem {
	return c.system
}

// Frame is the computed house framework: sidereal ascendant and twelve
// ordered sidereal cusp longitudes, cusp 1 first.
type Frame struct {
	Ascendant float64
	Cusps     [12]float64
}

// Compute returns the house frame for an instant and place. ayanamsha is
// the correction value in degrees at that instant; cusps come out sidereal.
func (c *Calculator) Compute(jd, latitude, longitude, ayanamsha float64) (Frame, error) {
	eps := ephemeris.MeanObliquity(jd)
	ramc := contracts.Norm360(ephemeris.GMST(jd) + longitude)

	tropAsc := ascendantFor(ramc, latitude, eps)
	asc := contracts.Norm360(tropAsc - ayanamsha)

	var frame Frame
	frame.Ascendant = asc

	switch c.system {
	case contracts.HouseWholeSign:
		ascSign := contracts.SignOf(asc)
		for i := range 12 {
			frame.Cusps[i] = float64(int(ascSign.Add(i)) * 30)
		}

	case contracts.HouseEqual:
		for i := range 12 {
			frame.Cusps[i] = contracts.Norm360(asc + float64(i)*30)
		}

	case contracts.HousePlacidus:
		if math.Abs(latitude) > polarLimit {
			return Frame{}, &contracts.HouseCalculationError{
				System: string(c.system), Latitude: latitude,
				Reason: "cusps degenerate inside the polar circle",
			}
		}
		tropical, err := placidusCusps(ramc, latitude, eps, tropAsc)
		if err != nil {
			return Frame{}, err
		}
		for i, cusp := range tropical {
			frame.Cusps[i] = contracts.Norm360(cusp - ayanamsha)
		}

	case contracts.HouseKoch:
		if math.Abs(latitude) > polarLimit {
			return Frame{}, &contracts.HouseCalculationError{
				System: string(c.system), Latitude: latitude,
				Reason: "cusps degenerate inside the polar circle",
			}
		}
		tropical, err := kochCusps(ramc, latitude, eps, tropAsc)
		if err != nil {
			return Frame{}, err
		}
		for i, cusp := range tropical {
			frame.Cusps[i] = contracts.Norm360(cusp - ayanamsha)
		}
	}

	c.logger.WithFields(map[string]interface{}{
		"system":    string(c.system),
		"ascendant": asc,
		"ramc":      ramc,
	}).Debug("computed house frame")

	return frame, nil
}

// HouseOf assigns a planet's sidereal longitude to a house. Whole Sign uses
// the classical sign count from the ascendant sign; cusp systems locate the
// longitude between consecutive cusps.
func (c *Calculator) HouseOf(frame Frame, siderealLon float64) int {
	if c.system == contracts.HouseWholeSign {
		ascSign := contracts.SignOf(frame.Ascendant)
		return ascSign.DistanceTo(contracts.SignOf(siderealLon))
	}
	lon := contracts.Norm360(siderealLon)
	for i := range 12 {
		lo := frame.Cusps[i]
		hi := frame.Cusps[(i+1)%12]
		if inArc(lon, lo, hi) {
			return i + 1
		}
	}
	return 12 // unreachable for a well-formed frame
}

// inArc reports whether lon lies in the half-open arc [lo, hi) going
// forward through the zodiac.
func inArc(lon, lo, hi float64) bool {
	span := contracts.Norm360(hi - lo)
	off := contracts.Norm360(lon - lo)
	return off < span
}

// ascendantFor returns the tropical ascendant for a given RAMC, latitude
// and obliquity via the standard rising formula.
func ascendantFor(ramc, latitude, eps float64) float64 {
	y := cosd(ramc)
	x := -(sind(ramc)*cosd(eps) + tand(latitude)*sind(eps))
	return contracts.Norm360(math.Atan2(y, x) * 180 / math.Pi)
}

// eclipticLonOfRA returns the ecliptic longitude of the ecliptic point with
// the given right ascension.
func eclipticLonOfRA(ra, eps float64) float64 {
	return contracts.Norm360(math.Atan2(sind(ra), cosd(ra)*cosd(eps)) * 180 / math.Pi)
}

// declinationOf returns the declination of the ecliptic point at longitude
// lon.
func declinationOf(lon, eps float64) float64 {
	return math.Asin(sind(eps)*sind(lon)) * 180 / math.Pi
}

// semiArc returns the semi-diurnal arc in degrees of a body at declination
// dec seen from latitude, or an error when the body is circumpolar.
func semiArc(latitude, dec float64) (float64, bool) {
	cosH := -tand(latitude) * tand(dec)
	if cosH < -1 || cosH > 1 {
		return 0, false
	}
	return math.Acos(cosH) * 180 / math.Pi, true
}

// placidusCusps computes tropical cusps 1..12. Intermediate cusps divide
// each quadrant's diurnal arc proportionally; the fixed points are the
// ascendant (cusp 1) and the midheaven (cusp 10).
func placidusCusps(ramc, latitude, eps, tropAsc float64) ([12]float64, error) {
	var cusps [12]float64
	mc := eclipticLonOfRA(ramc, eps)

	cusps[0] = tropAsc
	cusps[9] = mc

	// RA offsets: cusp 11 sits a third of the semi-diurnal arc east of the
	// meridian, cusp 12 two thirds; cusps 2 and 3 divide the nocturnal arc.
	type target struct {
		idx   int
		ra    func(sa float64) float64
		start float64
	}
	targets := []target{
		{10, func(sa float64) float64 { return ramc + sa/3 }, ramc + 30},
		{11, func(sa float64) float64 { return ramc + 2*sa/3 }, ramc + 60},
		{1, func(sa float64) float64 { return ramc + 60 + 2*sa/3 }, ramc + 120},
		{2, func(sa float64) float64 { return ramc + 120 + sa/3 }, ramc + 150},
	}

	for _, tg := range targets {
		ra := contracts.Norm360(tg.start)
		for range placidusIterations {
			lon := eclipticLonOfRA(ra, eps)
			dec := declinationOf(lon, eps)
			sa, ok := semiArc(latitude, dec)
			if !ok {
				return cusps, &contracts.HouseCalculationError{
					System: string(contracts.HousePlacidus), Latitude: latitude,
					Reason: "circumpolar cusp, no rising point",
				}
			}
			ra = contracts.Norm360(tg.ra(sa))
		}
		cusps[tg.idx] = eclipticLonOfRA(ra, eps)
	}

	// Western houses oppose the eastern ones
	cusps[3] = contracts.Norm360(cusps[9] + 180)
	cusps[4] = contracts.Norm360(cusps[10] + 180)
	cusps[5] = contracts.Norm360(cusps[11] + 180)
	cusps[6] = contracts.Norm360(cusps[0] + 180)
	cusps[7] = contracts.Norm360(cusps[1] + 180)
	cusps[8] = contracts.Norm360(cusps[2] + 180)

	return cusps, nil
}

// kochCusps computes tropical cusps 1..12 in the Koch (birthplace) system:
// intermediate cusps are the ascendants at sidereal times offset by thirds
// of the midheaven's ascensional difference. The ascendant itself rises at
// RAMC, so the eastern cusps 11 and 12 take negative offsets and 2 and 3
// positive ones.
func kochCusps(ramc, latitude, eps, tropAsc float64) ([12]float64, error) {
	var cusps [12]float64
	mc := eclipticLonOfRA(ramc, eps)
	decMC := declinationOf(mc, eps)

	sinAD := tand(latitude) * tand(decMC)
	if sinAD < -1 || sinAD > 1 {
		return cusps, &contracts.HouseCalculationError{
			System: string(contracts.HouseKoch), Latitude: latitude,
			Reason: "midheaven circumpolar, ascensional difference undefined",
		}
	}
	ad := math.Asin(sinAD) * 180 / math.Pi

	cusps[0] = tropAsc
	cusps[9] = mc
	cusps[10] = ascendantFor(contracts.Norm360(ramc-60-2*ad/3), latitude, eps)
	cusps[11] = ascendantFor(contracts.Norm360(ramc-30-ad/3), latitude, eps)
	cusps[1] = ascendantFor(contracts.Norm360(ramc+30+ad/3), latitude, eps)
	cusps[2] = ascendantFor(contracts.Norm360(ramc+60+2*ad/3), latitude, eps)

	cusps[3] = contracts.Norm360(cusps[9] + 180)
	cusps[4] = contracts.Norm360(cusps[10] + 180)
	cusps[5] = contracts.Norm360(cusps[11] + 180)
	cusps[6] = contracts.Norm360(cusps[0] + 180)
	cusps[7] = contracts.Norm360(cusps[1] + 180)
	cusps[8] = contracts.Norm360(cusps[2] + 180)

	return cusps, nil
}

func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
func tand(deg float64) float64 { return math.Tan(deg * math.Pi / 180) }
