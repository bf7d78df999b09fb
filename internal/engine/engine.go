// Package engine coordinates the full natal computation pipeline: ephemeris
// positions, house frame, divisional charts, dasha tree, relationships,
// strengths and yoga detection, assembled into one ChartResult.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wonny/jyotish/internal/ayanamsha"
	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/dasha"
	"github.com/wonny/jyotish/internal/ephemeris"
	"github.com/wonny/jyotish/internal/houses"
	"github.com/wonny/jyotish/internal/relations"
	"github.com/wonny/jyotish/internal/strength"
	"github.com/wonny/jyotish/internal/varga"
	"github.com/wonny/jyotish/internal/yogas"
	"github.com/wonny/jyotish/pkg/logger"
)

// Options bound the engine independently of per-request preferences.
type Options struct {
	EphemerisMinYear int
	EphemerisMaxYear int
	// CombustionOrbs overrides the classical per-planet orbs (degrees).
	CombustionOrbs map[contracts.Planet]float64
}

// Engine runs the pipeline. It is stateless between requests: identical
// requests produce identical results.
type Engine struct {
	opts     Options
	vargaGen *varga.Generator
	dashaEng *dasha.Engine
	relEng   *relations.Engine
	strEng   *strength.Engine
	detector *yogas.Detector
	logger   *logger.Logger
}

// New creates an engine. A nil logger disables logging.
func New(opts Options, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	if opts.EphemerisMinYear == 0 {
		opts.EphemerisMinYear = 1800
	}
	if opts.EphemerisMaxYear == 0 {
		opts.EphemerisMaxYear = 2050
	}
	relEng := relations.NewEngine(opts.CombustionOrbs, log)
	return &Engine{
		opts:     opts,
		vargaGen: varga.NewGenerator(log),
		dashaEng: dasha.NewEngine(log),
		relEng:   relEng,
		strEng:   strength.NewEngine(relEng, log),
		detector: yogas.NewDetector(log),
		logger:   log,
	}
}

// Provider builds an ephemeris provider honoring the request's node mode.
// Exposed so the transit path can share the natal configuration.
func (e *Engine) Provider(prefs contracts.Preferences) ephemeris.Provider {
	return ephemeris.NewAnalyticProvider(prefs.NodeMode, e.opts.EphemerisMinYear, e.opts.EphemerisMaxYear, e.logger)
}

// Natal computes only the rasi chart, for callers that need the natal
// framework without the derived layers. The returned corrector matches the
// request's ayanamsha so transit positions stay in the same sidereal frame.
func (e *Engine) Natal(ctx context.Context, req contracts.BirthRequest) (*contracts.Chart, *ayanamsha.Corrector, error) {
	prefs := req.Prefs
	if err := prefs.Validate(); err != nil {
		return nil, nil, err
	}
	moment, err := req.Moment()
	if err != nil {
		return nil, nil, err
	}
	corrector, err := ayanamsha.New(prefs.Ayanamsha)
	if err != nil {
		return nil, nil, err
	}
	calculator, err := houses.New(prefs.HouseSystem, e.logger)
	if err != nil {
		return nil, nil, err
	}
	jd := ephemeris.JulianDay(moment.UTC)
	chart, err := e.buildChart(ctx, prefs, moment, jd, corrector, calculator, corrector.Value(jd))
	if err != nil {
		return nil, nil, err
	}
	return chart, corrector, nil
}

// Compute resolves a birth request into the full chart result.
func (e *Engine) Compute(ctx context.Context, req contracts.BirthRequest) (*contracts.ChartResult, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	log := e.logger.WithField("run_id", runID)

	prefs := req.Prefs
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	moment, err := req.Moment()
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"utc":          moment.UTC.Format(time.RFC3339),
		"latitude":     moment.Latitude,
		"longitude":    moment.Longitude,
		"ayanamsha":    string(prefs.Ayanamsha),
		"house_system": string(prefs.HouseSystem),
		"node_mode":    string(prefs.NodeMode),
	}).Info("starting chart computation")

	corrector, err := ayanamsha.New(prefs.Ayanamsha)
	if err != nil {
		return nil, err
	}
	calculator, err := houses.New(prefs.HouseSystem, e.logger)
	if err != nil {
		return nil, err
	}

	jd := ephemeris.JulianDay(moment.UTC)
	ayanamshaValue := corrector.Value(jd)

	chart, err := e.buildChart(ctx, prefs, moment, jd, corrector, calculator, ayanamshaValue)
	if err != nil {
		return nil, fmt.Errorf("positions failed: %w", err)
	}

	vargas, err := e.vargaGen.GenerateAll(chart, prefs.DivisionalCharts)
	if err != nil {
		return nil, fmt.Errorf("divisional charts failed: %w", err)
	}

	tree := e.dashaEng.Build(moment.UTC, chart.Planets[contracts.Moon].SiderealLon)

	rels := e.relEng.Relationships(chart)
	aspects := e.relEng.Aspects(chart)
	bala := e.strEng.Shadbala(chart)
	ashtaka := e.strEng.Ashtakavarga(chart)

	yogaCtx := &contracts.ChartContext{
		Chart:         chart,
		Vargas:        vargas,
		Relationships: &rels,
		Shadbala:      bala,
	}
	found := e.detector.Detect(yogaCtx)

	result := &contracts.ChartResult{
		Moment:           moment,
		Ascendant:        chart.AscendantLon,
		AscendantSign:    chart.AscendantSign,
		Planets:          chart.Planets[:],
		HouseSystem:      prefs.HouseSystem,
		Ayanamsha:        prefs.Ayanamsha,
		AyanamshaValue:   ayanamshaValue,
		Cusps:            chart.Cusps,
		DivisionalCharts: vargas,
		DashaTree:        *tree,
		Shadbala:         bala,
		Ashtakavarga:     ashtaka,
		Relationships:    rels,
		Aspects:          aspects,
		Yogas:            found,
	}

	log.WithFields(map[string]interface{}{
		"ascendant_sign": chart.AscendantSign.String(),
		"yogas":          len(found),
		"duration_ms":    time.Since(startTime).Milliseconds(),
	}).Info("chart computation completed")

	return result, nil
}

// buildChart computes the nine positions in parallel, the house frame, and
// assembles the rasi chart.
func (e *Engine) buildChart(
	ctx context.Context,
	prefs contracts.Preferences,
	moment contracts.BirthMoment,
	jd float64,
	corrector *ayanamsha.Corrector,
	calculator *houses.Calculator,
	ayanamshaValue float64,
) (*contracts.Chart, error) {
	provider := e.Provider(prefs)

	var bodies [contracts.PlanetCount]ephemeris.Body
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range contracts.AllPlanets() {
		g.Go(func() error {
			body, err := provider.Position(gctx, moment.UTC, p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			bodies[p] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	frame, err := calculator.Compute(jd, moment.Latitude, moment.Longitude, ayanamshaValue)
	if err != nil {
		return nil, err
	}

	chart := &contracts.Chart{
		Moment:         moment,
		AscendantLon:   frame.Ascendant,
		AscendantSign:  contracts.SignOf(frame.Ascendant),
		Cusps:          frame.Cusps,
		HouseSystem:    prefs.HouseSystem,
		Ayanamsha:      prefs.Ayanamsha,
		AyanamshaValue: ayanamshaValue,
	}

	for _, p := range contracts.AllPlanets() {
		body := bodies[p]
		sid := corrector.Sidereal(body.Lon, jd)
		chart.Planets[p] = contracts.PlanetPosition{
			Planet:      p,
			Name:        p.String(),
			TropicalLon: body.Lon,
			SiderealLon: sid,
			Latitude:    body.Lat,
			Distance:    body.Distance,
			Speed:       body.Speed,
			Retrograde:  body.Retrograde(),
			Sign:        contracts.SignOf(sid),
			SignName:    contracts.SignOf(sid).String(),
			Degree:      contracts.DegreeInSign(sid),
			Nakshatra:   contracts.NakshatraOf(sid),
			Pada:        contracts.PadaOf(sid),
			House:       calculator.HouseOf(frame, sid),
		}
	}

	return chart, nil
}
