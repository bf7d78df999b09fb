package contracts

import "math"

// Sign is a sidereal zodiac sign, Aries = 0 .. Pisces = 11.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs.
const SignCount = 12

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// signLords maps each sign to its ruling planet. Rahu/Ketu own no sign.
var signLords = [SignCount]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// String returns the sign's English name.
func (s Sign) String() string {
	if s < 0 || int(s) >= SignCount {
		return "Unknown"
	}
	return signNames[s]
}

// Lord returns the sign's ruling planet.
func (s Sign) Lord() Planet {
	return signLords[((int(s)%SignCount)+SignCount)%SignCount]
}

// IsOdd reports whether the sign is odd (Aries, Gemini, ...), counting from 1.
func (s Sign) IsOdd() bool {
	return int(s)%2 == 0
}

// Add returns the sign n places ahead, wrapping around the zodiac.
func (s Sign) Add(n int) Sign {
	return Sign((((int(s) + n) % SignCount) + SignCount) % SignCount)
}

// DistanceTo counts signs from s to t inclusive, 1..12 (s to itself is 1).
// This is the classical house-counting convention.
func (s Sign) DistanceTo(t Sign) int {
	return ((int(t)-int(s))%SignCount+SignCount)%SignCount + 1
}

// Nakshatra is a lunar mansion, Ashwini = 0 .. Revati = 26.
type Nakshatra int

// NakshatraCount is the number of lunar mansions.
const NakshatraCount = 27

// NakshatraSpan is the ecliptic span of one nakshatra: 13 degrees 20 minutes.
const NakshatraSpan = 360.0 / NakshatraCount

// PadaSpan is one quarter of a nakshatra: 3 degrees 20 minutes.
const PadaSpan = NakshatraSpan / 4

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// nakshatraLords repeats the Vimshottari lord cycle three times across the
// 27 mansions, starting from Ketu at Ashwini.
var nakshatraLords = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// String returns the nakshatra's name.
func (n Nakshatra) String() string {
	if n < 0 || int(n) >= NakshatraCount {
		return "Unknown"
	}
	return nakshatraNames[n]
}

// Lord returns the nakshatra's Vimshottari lord.
func (n Nakshatra) Lord() Planet {
	return nakshatraLords[((int(n)%9)+9)%9]
}

// Norm360 normalizes an angle in degrees to [0, 360).
func Norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SignOf maps a sidereal longitude to its sign over half-open 30 degree
// bins, so 359.999999 resolves to Pisces and never wraps to Aries.
func SignOf(lon float64) Sign {
	idx := int(Norm360(lon) / 30)
	if idx >= SignCount { // only reachable if Norm360 returned exactly 360 by rounding
		idx = SignCount - 1
	}
	return Sign(idx)
}

// DegreeInSign returns the longitude's offset inside its sign, [0, 30).
func DegreeInSign(lon float64) float64 {
	return math.Mod(Norm360(lon), 30)
}

// NakshatraOf maps a sidereal longitude to its lunar mansion over half-open
// 13 degree 20 minute bins.
func NakshatraOf(lon float64) Nakshatra {
	idx := int(Norm360(lon) / NakshatraSpan)
	if idx >= NakshatraCount {
		idx = NakshatraCount - 1
	}
	return Nakshatra(idx)
}

// PadaOf returns the quarter of the nakshatra the longitude falls in, 1..4.
func PadaOf(lon float64) int {
	inNak := math.Mod(Norm360(lon), NakshatraSpan)
	pada := int(inNak/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return pada
}

// NakshatraFraction returns how far through its nakshatra the longitude has
// travelled, [0, 1). The Dasha balance at birth is derived from the Moon's
// value of this.
func NakshatraFraction(lon float64) float64 {
	return math.Mod(Norm360(lon), NakshatraSpan) / NakshatraSpan
}
