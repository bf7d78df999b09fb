package ephemeris

// sunPosition computes the Sun's apparent geocentric ecliptic longitude
// (degrees, mean equinox of date), latitude (always ~0) and distance (AU)
// from the short series in Meeus, Astronomical Algorithms ch. 25.
// Accuracy is about 0.01 degrees over the supported range.
func sunPosition(jd float64) (lon, lat, dist float64) {
	t := JulianCenturies(jd)

	// Geometric mean longitude and mean anomaly
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t*t

	// Equation of center
	c := (1.914602-0.004817*t-0.000014*t*t)*sind(m) +
		(0.019993-0.000101*t)*sind(2*m) +
		0.000289*sind(3*m)

	trueLon := l0 + c
	nu := m + c

	dist = 1.000001018 * (1 - e*e) / (1 + e*cosd(nu))

	// Apparent longitude: correct for nutation and aberration
	omega := 125.04 - 1934.136*t
	lon = norm360(trueLon - 0.00569 - 0.00478*sind(omega))
	return lon, 0, dist
}
