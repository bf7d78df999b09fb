package ephemeris

// lunarTerm is one row of the ELP-2000/82 truncation in Meeus ch. 47:
// multiples of the fundamental arguments D, M, M' and F, with the sine
// coefficient for longitude (1e-6 deg) and cosine coefficient for distance
// (meters).
type lunarTerm struct {
	d, m, mp, f int
	sl, sr      float64
}

// Meeus table 47.A.
var lunarLonTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
	{0, 1, 2, 0, -2120, 5751},
	{0, 2, 0, 0, -2069, 0},
	{2, -2, -1, 0, 2048, -4950},
	{2, 0, 1, -2, -1773, 4130},
	{2, 0, 0, 2, -1595, 0},
	{4, -1, -1, 0, 1215, -3958},
	{0, 0, 2, 2, -1110, 0},
	{3, 0, -1, 0, -892, 3258},
	{2, 1, 1, 0, -810, 2616},
	{4, -1, -2, 0, 759, -1897},
	{0, 2, -1, 0, -713, -2117},
	{2, 2, -1, 0, -700, 2354},
	{2, 1, -2, 0, 691, 0},
	{2, -1, 0, -2, 596, 0},
	{4, 0, 1, 0, 549, -1423},
	{0, 0, 4, 0, 537, -1117},
	{4, -1, 0, 0, 520, -1571},
	{1, 0, -2, 0, -487, -1739},
	{2, 1, 0, -2, -399, 0},
	{0, 0, 2, -2, -381, -4421},
	{1, 1, 1, 0, 351, 0},
	{3, 0, -2, 0, -340, 0},
	{4, 0, -3, 0, 330, 0},
	{2, -1, 2, 0, 327, 0},
	{0, 2, 1, 0, -323, 1165},
	{1, 1, -1, 0, 299, 0},
	{2, 0, 3, 0, 294, 0},
	{2, 0, -1, -2, 0, 8752},
}

// Meeus table 47.B (latitude, sine coefficients in 1e-6 deg).
var lunarLatTerms = []lunarTerm{
	{0, 0, 0, 1, 5128122, 0},
	{0, 0, 1, 1, 280602, 0},
	{0, 0, 1, -1, 277693, 0},
	{2, 0, 0, -1, 173237, 0},
	{2, 0, -1, 1, 55413, 0},
	{2, 0, -1, -1, 46271, 0},
	{2, 0, 0, 1, 32573, 0},
	{0, 0, 2, 1, 17198, 0},
	{2, 0, 1, -1, 9266, 0},
	{0, 0, 2, -1, 8822, 0},
	{2, -1, 0, -1, 8216, 0},
	{2, 0, -2, -1, 4324, 0},
	{2, 0, 1, 1, 4200, 0},
	{2, 1, 0, -1, -3359, 0},
	{2, -1, -1, 1, 2463, 0},
	{2, -1, 0, 1, 2211, 0},
	{2, -1, -1, -1, 2065, 0},
	{0, 1, -1, -1, -1870, 0},
	{4, 0, -1, -1, 1828, 0},
	{0, 1, 0, 1, -1794, 0},
	{0, 0, 0, 3, -1749, 0},
	{0, 1, -1, 1, -1565, 0},
	{1, 0, 0, 1, -1491, 0},
	{0, 1, 1, 1, -1475, 0},
	{0, 1, 1, -1, -1410, 0},
	{0, 1, 0, -1, -1344, 0},
	{1, 0, 0, -1, -1335, 0},
	{0, 0, 3, 1, 1107, 0},
	{4, 0, 0, -1, 1021, 0},
	{4, 0, -1, 1, 833, 0},
}

// moonPosition computes the Moon's geocentric ecliptic longitude and
// latitude (degrees, mean equinox of date) and distance (AU) from the
// truncated ELP-2000/82 series in Meeus ch. 47. Accuracy is a few
// thousandths of a degree in longitude.
func moonPosition(jd float64) (lon, lat, dist float64) {
	t := JulianCenturies(jd)

	// Fundamental arguments (degrees)
	lp := norm360(218.3164477 + 481267.88123421*t - 0.0015786*t*t +
		t*t*t/538841 - t*t*t*t/65194000)
	d := norm360(297.8501921 + 445267.1114034*t - 0.0018819*t*t +
		t*t*t/545868 - t*t*t*t/113065000)
	m := norm360(357.5291092 + 35999.0502909*t - 0.0001536*t*t +
		t*t*t/24490000)
	mp := norm360(134.9633964 + 477198.8675055*t + 0.0087414*t*t +
		t*t*t/69699 - t*t*t*t/14712000)
	f := norm360(93.2720950 + 483202.0175233*t - 0.0036539*t*t -
		t*t*t/3526000 + t*t*t*t/863310000)

	a1 := norm360(119.75 + 131.849*t)
	a2 := norm360(53.09 + 479264.290*t)
	a3 := norm360(313.45 + 481266.484*t)

	// Eccentricity damping for terms involving M
	e := 1 - 0.002516*t - 0.0000074*t*t

	var sumL, sumR float64
	for _, term := range lunarLonTerms {
		arg := float64(term.d)*d + float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f
		mult := 1.0
		switch term.m {
		case 1, -1:
			mult = e
		case 2, -2:
			mult = e * e
		}
		sumL += term.sl * mult * sind(arg)
		sumR += term.sr * mult * cosd(arg)
	}
	sumL += 3958*sind(a1) + 1962*sind(lp-f) + 318*sind(a2)

	var sumB float64
	for _, term := range lunarLatTerms {
		arg := float64(term.d)*d + float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f
		mult := 1.0
		switch term.m {
		case 1, -1:
			mult = e
		case 2, -2:
			mult = e * e
		}
		sumB += term.sl * mult * sind(arg)
	}
	sumB += -2235*sind(lp) + 382*sind(a3) + 175*sind(a1-f) +
		175*sind(a1+f) + 127*sind(lp-mp) - 115*sind(lp+mp)

	lon = norm360(lp + sumL/1e6)
	lat = sumB / 1e6
	dist = (385000.56 + sumR/1000) / 149597870.7 // km -> AU

	// Nutation in longitude, dominant term only
	omega := 125.04452 - 1934.136261*t
	lon = norm360(lon - 0.004778*sind(omega))
	return lon, lat, dist
}
