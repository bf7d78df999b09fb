package contracts

// Yoga is one detected classical combination. Detection is independent per
// yoga: overlapping yogas are all reported, with no precedence resolution.
type Yoga struct {
	Name         string   `json:"name"`
	Planets      []Planet `json:"planets,omitempty"`
	Houses       []int    `json:"houses,omitempty"`
	Significance string   `json:"significance"`
}
