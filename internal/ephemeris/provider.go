package ephemeris

import (
	"context"
	"time"

	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/pkg/logger"
)

// Body is one raw tropical position: ecliptic longitude and latitude in
// degrees (mean equinox of date), distance in AU, and longitudinal speed
// in degrees per day. Negative speed means retrograde.
type Body struct {
	Lon      float64 `json:"lon"`
	Lat      float64 `json:"lat"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
}

// Retrograde reports whether the body is in retrograde motion.
func (b Body) Retrograde() bool {
	return b.Speed < 0
}

// Provider supplies raw tropical positions. The built-in analytic provider
// satisfies it; an external ephemeris library can be swapped in behind the
// same seam.
type Provider interface {
	Position(ctx context.Context, t time.Time, p contracts.Planet) (Body, error)
}

// speedStep is the half-window for the symmetric finite difference that
// derives daily speed.
const speedStep = 0.5 // days

// AnalyticProvider computes positions from truncated analytic series:
// Meeus short solar series, ELP-2000/82 truncation for the Moon, Standish
// 1800-2050 Keplerian elements for Mercury through Saturn, and the mean or
// true lunar node for Rahu. Stateless and safe for concurrent use.
type AnalyticProvider struct {
	nodeMode contracts.NodeMode
	minYear  int
	maxYear  int
	logger   *logger.Logger
}

// NewAnalyticProvider creates a provider. minYear/maxYear bound the
// supported range; the Standish element set is fitted to 1800-2050.
func NewAnalyticProvider(nodeMode contracts.NodeMode, minYear, maxYear int, log *logger.Logger) *AnalyticProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &AnalyticProvider{
		nodeMode: nodeMode,
		minYear:  minYear,
		maxYear:  maxYear,
		logger:   log,
	}
}

// Position returns the tropical position of a planet at a UTC instant.
// Instants outside the supported year range fail fast with
// EphemerisRangeError.
func (ap *AnalyticProvider) Position(ctx context.Context, t time.Time, p contracts.Planet) (Body, error) {
	if err := ctx.Err(); err != nil {
		return Body{}, err
	}
	if !p.Valid() {
		return Body{}, &contracts.InvalidInputError{Field: "planet", Reason: "unknown planet id"}
	}
	year := t.UTC().Year()
	if year < ap.minYear || year > ap.maxYear {
		return Body{}, &contracts.EphemerisRangeError{Instant: t, MinYear: ap.minYear, MaxYear: ap.maxYear}
	}

	jd := JulianDay(t)
	lon, lat, dist := ap.lonLatDist(p, jd)

	// Symmetric finite difference for daily motion
	before, _, _ := ap.lonLatDist(p, jd-speedStep)
	after, _, _ := ap.lonLatDist(p, jd+speedStep)
	speed := angularDelta(before, after) / (2 * speedStep)

	body := Body{Lon: lon, Lat: lat, Distance: dist, Speed: speed}

	ap.logger.WithFields(map[string]interface{}{
		"planet": p.String(),
		"jd":     jd,
		"lon":    lon,
		"speed":  speed,
	}).Debug("computed tropical position")

	return body, nil
}

// lonLatDist dispatches to the per-body series.
func (ap *AnalyticProvider) lonLatDist(p contracts.Planet, jd float64) (lon, lat, dist float64) {
	switch p {
	case contracts.Sun:
		return sunPosition(jd)
	case contracts.Moon:
		return moonPosition(jd)
	case contracts.Rahu:
		return ap.nodeLon(jd), 0, 0
	case contracts.Ketu:
		return norm360(ap.nodeLon(jd) + 180), 0, 0
	default:
		return planetPosition(p, jd)
	}
}

func (ap *AnalyticProvider) nodeLon(jd float64) float64 {
	if ap.nodeMode == contracts.NodeTrue {
		return trueNode(jd)
	}
	return meanNode(jd)
}

// angularDelta returns the signed smallest difference b-a in degrees,
// so speeds survive the 360 -> 0 wrap.
func angularDelta(a, b float64) float64 {
	d := norm360(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}
