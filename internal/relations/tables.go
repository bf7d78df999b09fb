package relations

import "github.com/wonny/jyotish/internal/contracts"

// naturalFriends and naturalEnemies encode the classical fixed friendship
// table; any pairing in neither set is neutral.
var naturalFriends = map[contracts.Planet][]contracts.Planet{
	contracts.Sun:     {contracts.Moon, contracts.Mars, contracts.Jupiter},
	contracts.Moon:    {contracts.Sun, contracts.Mercury},
	contracts.Mars:    {contracts.Sun, contracts.Moon, contracts.Jupiter},
	contracts.Mercury: {contracts.Sun, contracts.Venus},
	contracts.Jupiter: {contracts.Sun, contracts.Moon, contracts.Mars},
	contracts.Venus:   {contracts.Mercury, contracts.Saturn},
	contracts.Saturn:  {contracts.Mercury, contracts.Venus},
	contracts.Rahu:    {contracts.Mercury, contracts.Venus, contracts.Saturn},
	contracts.Ketu:    {contracts.Mars, contracts.Venus, contracts.Saturn},
}

var naturalEnemies = map[contracts.Planet][]contracts.Planet{
	contracts.Sun:     {contracts.Venus, contracts.Saturn},
	contracts.Moon:    {},
	contracts.Mars:    {contracts.Mercury},
	contracts.Mercury: {contracts.Moon},
	contracts.Jupiter: {contracts.Mercury, contracts.Venus},
	contracts.Venus:   {contracts.Sun, contracts.Moon},
	contracts.Saturn:  {contracts.Sun, contracts.Moon, contracts.Mars},
	contracts.Rahu:    {contracts.Sun, contracts.Moon, contracts.Mars},
	contracts.Ketu:    {contracts.Sun, contracts.Moon},
}

// exaltation holds each planet's exaltation sign and deep-exaltation degree.
// Debilitation is the opposite sign at the same degree.
var exaltation = map[contracts.Planet]struct {
	Sign   contracts.Sign
	Degree float64
}{
	contracts.Sun:     {contracts.Aries, 10},
	contracts.Moon:    {contracts.Taurus, 3},
	contracts.Mercury: {contracts.Virgo, 15},
	contracts.Venus:   {contracts.Pisces, 27},
	contracts.Mars:    {contracts.Capricorn, 28},
	contracts.Jupiter: {contracts.Cancer, 5},
	contracts.Saturn:  {contracts.Libra, 20},
	contracts.Rahu:    {contracts.Taurus, 20},
	contracts.Ketu:    {contracts.Scorpio, 20},
}

// moolatrikona holds each planet's moolatrikona sign and degree range.
// The nodes have none.
var moolatrikona = map[contracts.Planet]struct {
	Sign     contracts.Sign
	From, To float64
}{
	contracts.Sun:     {contracts.Leo, 0, 20},
	contracts.Moon:    {contracts.Taurus, 3, 30},
	contracts.Mars:    {contracts.Aries, 0, 12},
	contracts.Mercury: {contracts.Virgo, 16, 20},
	contracts.Jupiter: {contracts.Sagittarius, 0, 10},
	contracts.Venus:   {contracts.Libra, 0, 15},
	contracts.Saturn:  {contracts.Aquarius, 0, 20},
}

// ownSigns lists the signs each planet rules.
var ownSigns = map[contracts.Planet][]contracts.Sign{
	contracts.Sun:     {contracts.Leo},
	contracts.Moon:    {contracts.Cancer},
	contracts.Mars:    {contracts.Aries, contracts.Scorpio},
	contracts.Mercury: {contracts.Gemini, contracts.Virgo},
	contracts.Jupiter: {contracts.Sagittarius, contracts.Pisces},
	contracts.Venus:   {contracts.Taurus, contracts.Libra},
	contracts.Saturn:  {contracts.Capricorn, contracts.Aquarius},
}

// combustOrbs holds the default orb, in degrees from the Sun, inside which
// a planet is combust. Mercury and Venus tighten while retrograde; nodes
// never combust.
var combustOrbs = map[contracts.Planet]float64{
	contracts.Moon:    12,
	contracts.Mars:    17,
	contracts.Mercury: 14,
	contracts.Venus:   10,
	contracts.Jupiter: 11,
	contracts.Saturn:  15,
}

var combustOrbsRetro = map[contracts.Planet]float64{
	contracts.Mercury: 12,
	contracts.Venus:   8,
}

// specialAspects lists the extra whole-house drishti beyond the universal
// 7th: Mars 4th/8th, Jupiter 5th/9th, Saturn 3rd/10th.
var specialAspects = map[contracts.Planet][]int{
	contracts.Mars:    {4, 8},
	contracts.Jupiter: {5, 9},
	contracts.Saturn:  {3, 10},
}

// ExaltationSign returns a planet's exaltation sign.
func ExaltationSign(p contracts.Planet) contracts.Sign {
	return exaltation[p].Sign
}

// DebilitationSign returns a planet's debilitation sign.
func DebilitationSign(p contracts.Planet) contracts.Sign {
	return exaltation[p].Sign.Add(6)
}

// IsOwnSign reports whether a planet rules the sign.
func IsOwnSign(p contracts.Planet, s contracts.Sign) bool {
	for _, own := range ownSigns[p] {
		if own == s {
			return true
		}
	}
	return false
}

// NaturalRelation returns the fixed-table grade from a toward b.
func NaturalRelation(a, b contracts.Planet) contracts.Relation {
	for _, f := range naturalFriends[a] {
		if f == b {
			return contracts.Friend
		}
	}
	for _, e := range naturalEnemies[a] {
		if e == b {
			return contracts.Enemy
		}
	}
	return contracts.NeutralRelation
}
