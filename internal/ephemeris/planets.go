package ephemeris

import (
	"math"

	"github.com/wonny/jyotish/internal/contracts"
)

// keplerElements holds J2000 mean orbital elements and their per-century
// rates (Standish, JPL approximate positions, valid 1800-2050 AD).
// Angles in degrees, semi-major axis in AU.
type keplerElements struct {
	a, aDot   float64 // semi-major axis
	e, eDot   float64 // eccentricity
	i, iDot   float64 // inclination
	l, lDot   float64 // mean longitude
	pi, piDot float64 // longitude of perihelion
	om, omDot float64 // longitude of ascending node
}

var planetElements = map[contracts.Planet]keplerElements{
	contracts.Mercury: {
		0.38709927, 0.00000037, 0.20563593, 0.00001906,
		7.00497902, -0.00594749, 252.25032350, 149472.67411175,
		77.45779628, 0.16047689, 48.33076593, -0.12534081,
	},
	contracts.Venus: {
		0.72333566, 0.00000390, 0.00677672, -0.00004107,
		3.39467605, -0.00078890, 181.97909950, 58517.81538729,
		131.60246718, 0.00268329, 76.67984255, -0.27769418,
	},
	contracts.Mars: {
		1.52371034, 0.00001847, 0.09339410, 0.00007882,
		1.84969142, -0.00813131, -4.55343205, 19140.30268499,
		-23.94362959, 0.44441088, 49.55953891, -0.29257343,
	},
	contracts.Jupiter: {
		5.20288700, -0.00011607, 0.04838624, -0.00013253,
		1.30439695, -0.00183714, 34.39644051, 3034.74612775,
		14.72847983, 0.21252668, 100.47390909, 0.20469106,
	},
	contracts.Saturn: {
		9.53667594, -0.00125060, 0.05386179, -0.00050991,
		2.48599187, 0.00193609, 49.95424423, 1222.49362201,
		92.59887831, -0.41897216, 113.66242448, -0.28867794,
	},
}

// Earth-Moon barycenter, used to translate heliocentric to geocentric.
var earthElements = keplerElements{
	1.00000261, 0.00000562, 0.01671123, -0.00004392,
	-0.00001531, -0.01294668, 100.46457166, 35999.37244981,
	102.93768193, 0.32327364, 0, 0,
}

// solveKepler iterates E - e*sin(E) = M (all in degrees).
func solveKepler(m, ecc float64) float64 {
	mRad := m * math.Pi / 180
	e := mRad
	for range 12 {
		e = e - (e-ecc*math.Sin(e)-mRad)/(1-ecc*math.Cos(e))
	}
	return e * 180 / math.Pi
}

// heliocentric returns J2000-ecliptic rectangular coordinates (AU) from
// mean elements at t Julian centuries past J2000.
func heliocentric(el keplerElements, t float64) (x, y, z float64) {
	a := el.a + el.aDot*t
	ecc := el.e + el.eDot*t
	inc := el.i + el.iDot*t
	l := el.l + el.lDot*t
	longPeri := el.pi + el.piDot*t
	longNode := el.om + el.omDot*t

	argPeri := longPeri - longNode
	m := norm360(l - longPeri)

	eAnom := solveKepler(m, ecc)
	xp := a * (cosd(eAnom) - ecc)
	yp := a * math.Sqrt(1-ecc*ecc) * sind(eAnom)

	// Rotate from orbital plane to J2000 ecliptic
	cw, sw := cosd(argPeri), sind(argPeri)
	co, so := cosd(longNode), sind(longNode)
	ci, si := cosd(inc), sind(inc)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// planetPosition computes a planet's geocentric ecliptic longitude and
// latitude (degrees, mean equinox of date) and distance (AU) from Keplerian
// mean elements. Worst-case error is around a tenth of a degree for Saturn,
// well inside what sign and nakshatra resolution need.
func planetPosition(p contracts.Planet, jd float64) (lon, lat, dist float64) {
	t := JulianCenturies(jd)

	px, py, pz := heliocentric(planetElements[p], t)
	ex, ey, ez := heliocentric(earthElements, t)

	gx, gy, gz := px-ex, py-ey, pz-ez
	dist = math.Sqrt(gx*gx + gy*gy + gz*gz)

	lon = norm360(math.Atan2(gy, gx) * 180 / math.Pi)
	lat = math.Asin(gz/dist) * 180 / math.Pi

	// Elements are referred to J2000; precess longitude to equinox of date.
	lon = norm360(lon + (5029.0966*t+1.11113*t*t)/3600)
	return lon, lat, dist
}
