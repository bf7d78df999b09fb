package contracts

// Shadbala is the six-fold strength of one planet. Components are in
// shashtiamsha (sixtieths of a rupa); Normalized rescales Total to 0..10
// against the classical required-strength threshold.
type Shadbala struct {
	Sthana     float64 `json:"sthana"`     // positional
	Dig        float64 `json:"dig"`        // directional
	Kala       float64 `json:"kala"`       // temporal
	Chesta     float64 `json:"chesta"`     // motional
	Naisargika float64 `json:"naisargika"` // natural
	Drishti    float64 `json:"drishti"`    // aspectual
	Total      float64 `json:"total"`
	Normalized float64 `json:"normalized"` // 0..10
}

// Ashtakavarga is the eight-contributor bindu scoring. Bindus maps each of
// the seven classical planets to its bhinnashtakavarga row: bindus per sign,
// each 0..8. Sarva is the sign-wise sum across the seven rows, 0..56.
type Ashtakavarga struct {
	Bindus map[string][SignCount]int `json:"bindus"`
	Sarva  [SignCount]int            `json:"sarva"`
}

// TotalBindus sums every bhinna cell. The classical tables make this 337
// for any chart.
func (a Ashtakavarga) TotalBindus() int {
	total := 0
	for _, row := range a.Bindus {
		for _, b := range row {
			total += b
		}
	}
	return total
}
