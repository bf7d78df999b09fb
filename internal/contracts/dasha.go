package contracts

import "time"

// DashaLevel is the depth of a Vimshottari period.
type DashaLevel int

const (
	Mahadasha DashaLevel = iota
	Antardasha
	Pratyantardasha
)

var dashaLevelNames = [...]string{"mahadasha", "antardasha", "pratyantardasha"}

// String returns the level name.
func (l DashaLevel) String() string {
	if l < 0 || int(l) >= len(dashaLevelNames) {
		return "unknown"
	}
	return dashaLevelNames[l]
}

// DashaPeriod is one node in the Vimshottari timeline. Periods reference
// their parent by arena index, not pointer.
type DashaPeriod struct {
	Planet Planet     `json:"planet"`
	Name   string     `json:"name"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
	Level  DashaLevel `json:"level"`
	Parent int        `json:"parent"` // index into DashaTree.Periods, -1 at mahadasha level
}

// Contains reports whether t falls inside the period, treating [Start, End)
// as half-open so sibling periods tile without overlap.
func (p DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Duration returns the period's span.
func (p DashaPeriod) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// DashaTree is the arena of all computed periods: 9 mahadashas, their
// antardashas and pratyantardashas, in chronological order within each
// level.
type DashaTree struct {
	BirthLord Planet        `json:"birth_lord"`
	Balance   float64       `json:"balance_years"` // birth lord years left at birth
	Periods   []DashaPeriod `json:"periods"`
}

// AtLevel returns the periods of one level in chronological order.
func (t *DashaTree) AtLevel(level DashaLevel) []DashaPeriod {
	var out []DashaPeriod
	for _, p := range t.Periods {
		if p.Level == level {
			out = append(out, p)
		}
	}
	return out
}

// Children returns the direct sub-periods of the period at arena index i.
func (t *DashaTree) Children(i int) []DashaPeriod {
	var out []DashaPeriod
	for _, p := range t.Periods {
		if p.Parent == i {
			out = append(out, p)
		}
	}
	return out
}

// ActiveAt returns the running period at each level for an instant, outer
// first. The slice is empty when the instant precedes the first mahadasha
// or follows the last.
func (t *DashaTree) ActiveAt(at time.Time) []DashaPeriod {
	var out []DashaPeriod
	parent := -1
	for level := Mahadasha; level <= Pratyantardasha; level++ {
		found := false
		for i, p := range t.Periods {
			if p.Level == level && p.Parent == parent && p.Contains(at) {
				out = append(out, p)
				parent = i
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return out
}
