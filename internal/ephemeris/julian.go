package ephemeris

import (
	"math"
	"time"
)

// J2000 is the Julian day of the standard epoch 2000 January 1.5 TT.
const J2000 = 2451545.0

// JulianDay converts a UTC instant to a Julian day number.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y := t.Year()
	m := int(t.Month())
	d := float64(t.Day()) +
		float64(t.Hour())/24 +
		float64(t.Minute())/1440 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/86400

	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d + float64(b) - 1524.5
}

// JulianCenturies returns Julian centuries since J2000 for a Julian day.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees.
func MeanObliquity(jd float64) float64 {
	t := JulianCenturies(jd)
	return 23.43929111 - 0.0130042*t - 1.64e-7*t*t + 5.04e-7*t*t*t
}

// GMST returns Greenwich mean sidereal time in degrees, [0, 360).
func GMST(jd float64) float64 {
	t := JulianCenturies(jd)
	theta := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return norm360(theta)
}

// norm360 normalizes degrees to [0, 360).
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// sind, cosd operate in degrees; the series tables are all degree-based.
func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
