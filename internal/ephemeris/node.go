package ephemeris

// meanNode returns the Moon's mean ascending node longitude in degrees,
// mean equinox of date.
func meanNode(jd float64) float64 {
	t := JulianCenturies(jd)
	return norm360(125.0445479 - 1934.1362891*t + 0.0020754*t*t +
		t*t*t/467441 - t*t*t*t/60616000)
}

// trueNode applies the dominant periodic corrections to the mean node
// (Meeus ch. 47). The osculating node swings up to ~1.7 degrees around
// the mean with a ~173 day period.
func trueNode(jd float64) float64 {
	t := JulianCenturies(jd)

	d := 297.8501921 + 445267.1114034*t - 0.0018819*t*t
	m := 357.5291092 + 35999.0502909*t
	mp := 134.9633964 + 477198.8675055*t + 0.0087414*t*t
	f := 93.2720950 + 483202.0175233*t - 0.0036539*t*t

	corr := -1.4979*sind(2*(d-f)) -
		0.1500*sind(m) -
		0.1226*sind(2*d) +
		0.1176*sind(2*f) -
		0.0801*sind(2*(mp-f))

	return norm360(meanNode(jd) + corr)
}
