package contracts

import (
	"time"
)

// AyanamshaModel selects the precession model converting tropical to
// sidereal longitudes. The set is closed; selection happens once at
// configuration time.
type AyanamshaModel string

const (
	AyanamshaLahiri       AyanamshaModel = "lahiri"
	AyanamshaRaman        AyanamshaModel = "raman"
	AyanamshaKP           AyanamshaModel = "kp"
	AyanamshaYukteshwar   AyanamshaModel = "yukteshwar"
	AyanamshaFaganBradley AyanamshaModel = "fagan_bradley"
)

// Valid reports whether the model is one of the supported five.
func (a AyanamshaModel) Valid() bool {
	switch a {
	case AyanamshaLahiri, AyanamshaRaman, AyanamshaKP, AyanamshaYukteshwar, AyanamshaFaganBradley:
		return true
	}
	return false
}

// HouseSystem selects the cusp strategy.
type HouseSystem string

const (
	HouseWholeSign HouseSystem = "whole_sign"
	HouseEqual     HouseSystem = "equal"
	HousePlacidus  HouseSystem = "placidus"
	HouseKoch      HouseSystem = "koch"
)

// Valid reports whether the house system is supported.
func (h HouseSystem) Valid() bool {
	switch h {
	case HouseWholeSign, HouseEqual, HousePlacidus, HouseKoch:
		return true
	}
	return false
}

// NodeMode selects how Rahu's position is computed.
type NodeMode string

const (
	NodeMean NodeMode = "mean"
	NodeTrue NodeMode = "true"
)

// Valid reports whether the node mode is supported.
func (n NodeMode) Valid() bool {
	return n == NodeMean || n == NodeTrue
}

// Preferences are the per-computation calculation options.
type Preferences struct {
	Ayanamsha        AyanamshaModel `json:"ayanamsha" yaml:"ayanamsha"`
	HouseSystem      HouseSystem    `json:"house_system" yaml:"house_system"`
	NodeMode         NodeMode       `json:"node_mode" yaml:"node_mode"`
	DivisionalCharts []int          `json:"divisional_charts" yaml:"divisional_charts"`
}

// DefaultPreferences returns the classical defaults: Lahiri ayanamsha,
// whole-sign houses, mean node, D1/D9/D10 charts.
func DefaultPreferences() Preferences {
	return Preferences{
		Ayanamsha:        AyanamshaLahiri,
		HouseSystem:      HouseWholeSign,
		NodeMode:         NodeMean,
		DivisionalCharts: []int{1, 9, 10},
	}
}

// Validate checks the closed-set preference values.
func (p Preferences) Validate() error {
	if !p.Ayanamsha.Valid() {
		return &ConfigurationError{Setting: "ayanamsha", Value: string(p.Ayanamsha)}
	}
	if !p.HouseSystem.Valid() {
		return &ConfigurationError{Setting: "house_system", Value: string(p.HouseSystem)}
	}
	if !p.NodeMode.Valid() {
		return &ConfigurationError{Setting: "node_mode", Value: string(p.NodeMode)}
	}
	return nil
}

// BirthMoment is the validated, immutable input to the pipeline: one UTC
// instant plus the geographic frame it is observed from.
type BirthMoment struct {
	UTC       time.Time `json:"utc"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"`
}

// BirthRequest is the raw caller input. TimeKnown must be set explicitly;
// the engine refuses to guess a birth time.
//
// Date carries the birth date and local clock reading. When Timezone is
// set, Moment reads the calendar components as wall-clock time in that zone
// and ignores the location Date itself carries; with Timezone empty, Date's
// own location is authoritative.
type BirthRequest struct {
	Date      time.Time   `json:"date"`
	TimeKnown bool        `json:"time_known"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Prefs     Preferences `json:"preferences"`
}

// Moment validates the request and resolves it to a BirthMoment in UTC.
func (r BirthRequest) Moment() (BirthMoment, error) {
	if !r.TimeKnown {
		return BirthMoment{}, &InvalidInputError{Field: "time", Reason: "birth time unknown; engine does not default it"}
	}
	if r.Date.IsZero() {
		return BirthMoment{}, &InvalidInputError{Field: "date", Reason: "missing birth date"}
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		return BirthMoment{}, &InvalidInputError{Field: "latitude", Reason: "must be in [-90, 90]"}
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return BirthMoment{}, &InvalidInputError{Field: "longitude", Reason: "must be in [-180, 180]"}
	}
	loc := time.UTC
	if r.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(r.Timezone)
		if err != nil {
			return BirthMoment{}, &InvalidInputError{Field: "timezone", Reason: "unknown timezone id " + r.Timezone}
		}
	}
	utc := r.Date
	if r.Timezone != "" {
		// Wall-clock components in the birth place's zone; whatever location
		// Date carries does not count.
		utc = time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(),
			r.Date.Hour(), r.Date.Minute(), r.Date.Second(), r.Date.Nanosecond(), loc)
	}
	return BirthMoment{
		UTC:       utc.UTC(),
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
	}, nil
}
