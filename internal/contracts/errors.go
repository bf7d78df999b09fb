package contracts

import (
	"fmt"
	"time"
)

// InvalidInputError reports malformed birth data. The engine never infers
// missing input: an unknown birth time is rejected, not defaulted.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// EphemerisRangeError reports an instant outside the supported ephemeris
// range. Computation fails fast; there is no fallback model.
type EphemerisRangeError struct {
	Instant time.Time
	MinYear int
	MaxYear int
}

func (e *EphemerisRangeError) Error() string {
	return fmt.Sprintf("ephemeris: %s outside supported range [%d, %d]",
		e.Instant.Format(time.RFC3339), e.MinYear, e.MaxYear)
}

// HouseCalculationError reports degenerate house cusps, typically a quadrant
// system asked to divide the sky at a polar latitude.
type HouseCalculationError struct {
	System   string
	Latitude float64
	Reason   string
}

func (e *HouseCalculationError) Error() string {
	return fmt.Sprintf("houses: %s at latitude %.4f: %s", e.System, e.Latitude, e.Reason)
}

// UnsupportedDivisionalChartError reports a varga division the generator
// has no mapping rules for.
type UnsupportedDivisionalChartError struct {
	Division int
}

func (e *UnsupportedDivisionalChartError) Error() string {
	return fmt.Sprintf("varga: D%d is not supported", e.Division)
}

// ConfigurationError reports an unknown ayanamsha model, house system or
// other closed-set preference value.
type ConfigurationError struct {
	Setting string
	Value   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: unknown %s %q", e.Setting, e.Value)
}
