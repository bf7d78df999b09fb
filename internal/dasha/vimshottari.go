// Package dasha builds the Vimshottari 120-year planetary period timeline.
//
// The tree is anchored by the Moon's natal nakshatra: the birth lord's
// mahadasha begins before the birth instant, at birth - (full period -
// balance), so the birth falls exactly balance years before that
// mahadasha's end. Anchoring the start at the birth date itself is a known
// defect and the regression tests guard against it.
//
// External references can still disagree with this timeline by a few years;
// birth-time rounding, coordinate precision and ayanamsha detail all shift
// the Moon's nakshatra fraction. That calibration gap is documented, not
// silently corrected.
package dasha

import (
	"time"

	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/pkg/logger"
)

// TotalYears is the full Vimshottari cycle.
const TotalYears = 120.0

// YearDays converts dasha years to days.
const YearDays = 365.25

// lordOrder is the fixed cyclical sequence of Vimshottari lords.
var lordOrder = [9]contracts.Planet{
	contracts.Ketu, contracts.Venus, contracts.Sun, contracts.Moon,
	contracts.Mars, contracts.Rahu, contracts.Jupiter, contracts.Saturn,
	contracts.Mercury,
}

// lordYears maps each lord to its full mahadasha length. The nine sum to
// 120.
var lordYears = map[contracts.Planet]float64{
	contracts.Ketu:    7,
	contracts.Venus:   20,
	contracts.Sun:     6,
	contracts.Moon:    10,
	contracts.Mars:    7,
	contracts.Rahu:    18,
	contracts.Jupiter: 16,
	contracts.Saturn:  19,
	contracts.Mercury: 17,
}

// Years returns a lord's full mahadasha length in years.
func Years(p contracts.Planet) float64 {
	return lordYears[p]
}

// Engine builds Vimshottari trees down to pratyantardasha.
type Engine struct {
	logger *logger.Logger
}

// NewEngine creates a dasha engine.
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{logger: log}
}

// Build computes the full tree from the birth instant and the Moon's natal
// sidereal longitude.
func (e *Engine) Build(birth time.Time, moonLon float64) *contracts.DashaTree {
	nak := contracts.NakshatraOf(moonLon)
	birthLord := nak.Lord()
	frac := contracts.NakshatraFraction(moonLon)
	balance := (1 - frac) * lordYears[birthLord]

	// The birth lord's mahadasha started before birth: the Moon had already
	// traversed part of the nakshatra when the native was born.
	elapsed := lordYears[birthLord] - balance
	firstStart := birth.Add(-yearsToDuration(elapsed))

	tree := &contracts.DashaTree{
		BirthLord: birthLord,
		Balance:   balance,
	}

	startIdx := lordIndex(birthLord)
	cursor := firstStart
	for i := range 9 {
		lord := lordOrder[(startIdx+i)%9]
		end := cursor.Add(yearsToDuration(lordYears[lord]))
		mahaIdx := len(tree.Periods)
		tree.Periods = append(tree.Periods, contracts.DashaPeriod{
			Planet: lord,
			Name:   lord.String(),
			Start:  cursor,
			End:    end,
			Level:  contracts.Mahadasha,
			Parent: -1,
		})
		e.subdivide(tree, mahaIdx, contracts.Antardasha)
		cursor = end
	}

	e.logger.WithFields(map[string]interface{}{
		"birth_lord": birthLord.String(),
		"nakshatra":  nak.String(),
		"balance":    balance,
		"periods":    len(tree.Periods),
	}).Debug("built vimshottari tree")

	return tree
}

// subdivide appends the nine children of the period at arena index parent,
// iterating the lord cycle from the parent's own lord. Child lengths are
// proportional to each lord's full period; the last child absorbs the
// rounding residue so children tile the parent exactly.
func (e *Engine) subdivide(tree *contracts.DashaTree, parent int, level contracts.DashaLevel) {
	p := tree.Periods[parent]
	parentSpan := p.End.Sub(p.Start)

	startIdx := lordIndex(p.Planet)
	cursor := p.Start
	for i := range 9 {
		lord := lordOrder[(startIdx+i)%9]
		var end time.Time
		if i == 8 {
			end = p.End
		} else {
			share := time.Duration(float64(parentSpan) * lordYears[lord] / TotalYears)
			end = cursor.Add(share)
		}
		childIdx := len(tree.Periods)
		tree.Periods = append(tree.Periods, contracts.DashaPeriod{
			Planet: lord,
			Name:   lord.String(),
			Start:  cursor,
			End:    end,
			Level:  level,
			Parent: parent,
		})
		if level < contracts.Pratyantardasha {
			e.subdivide(tree, childIdx, level+1)
		}
		cursor = end
	}
}

func lordIndex(p contracts.Planet) int {
	for i, l := range lordOrder {
		if l == p {
			return i
		}
	}
	return 0
}

func yearsToDuration(years float64) time.Duration {
	return time.Duration(years * YearDays * 24 * float64(time.Hour))
}
