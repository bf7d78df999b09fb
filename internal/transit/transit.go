// Package transit maps sky positions at an arbitrary instant onto a natal
// chart's house framework. Unlike the rest of the pipeline its output
// depends on the query time, so it is excluded from result memoization.
package transit

import (
	"context"
	"time"

	"github.com/wonny/jyotish/internal/ayanamsha"
	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/ephemeris"
	"github.com/wonny/jyotish/pkg/logger"
)

// SadeSatiPhase names the stage of Saturn's transit around the natal Moon.
type SadeSatiPhase string

const (
	SadeSatiNone    SadeSatiPhase = "none"
	SadeSatiRising  SadeSatiPhase = "rising"  // 12th from natal Moon
	SadeSatiPeak    SadeSatiPhase = "peak"    // over natal Moon sign
	SadeSatiSetting SadeSatiPhase = "setting" // 2nd from natal Moon
)

// Snapshot is the transit state at one instant against one natal chart.
type Snapshot struct {
	At            time.Time                  `json:"at"`
	Positions     []contracts.PlanetPosition `json:"positions"` // houses are natal houses
	Aspects       []contracts.Aspect         `json:"aspects"`   // transiting planet onto natal houses
	SadeSati      SadeSatiPhase              `json:"sade_sati"`
	SaturnReturn  bool                       `json:"saturn_return"`
	JupiterReturn bool                       `json:"jupiter_return"`
}

// Engine computes transit snapshots.
type Engine struct {
	provider  ephemeris.Provider
	corrector *ayanamsha.Corrector
	logger    *logger.Logger
}

// NewEngine creates a transit engine sharing the natal pipeline's ephemeris
// provider and ayanamsha corrector.
func NewEngine(provider ephemeris.Provider, corrector *ayanamsha.Corrector, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{provider: provider, corrector: corrector, logger: log}
}

// Snapshot computes positions at the query instant and maps them onto the
// natal whole-sign framework.
func (e *Engine) Snapshot(ctx context.Context, natal *contracts.Chart, at time.Time) (*Snapshot, error) {
	jd := ephemeris.JulianDay(at)
	snap := &Snapshot{At: at, SadeSati: SadeSatiNone}

	natalMoonSign := natal.Planets[contracts.Moon].Sign

	for _, p := range contracts.AllPlanets() {
		body, err := e.provider.Position(ctx, at, p)
		if err != nil {
			return nil, err
		}
		sid := e.corrector.Sidereal(body.Lon, jd)
		sign := contracts.SignOf(sid)
		house := natal.AscendantSign.DistanceTo(sign)

		pos := contracts.PlanetPosition{
			Planet:      p,
			Name:        p.String(),
			TropicalLon: body.Lon,
			SiderealLon: sid,
			Latitude:    body.Lat,
			Distance:    body.Distance,
			Speed:       body.Speed,
			Retrograde:  body.Retrograde(),
			Sign:        sign,
			SignName:    sign.String(),
			Degree:      contracts.DegreeInSign(sid),
			Nakshatra:   contracts.NakshatraOf(sid),
			Pada:        contracts.PadaOf(sid),
			House:       house,
		}
		snap.Positions = append(snap.Positions, pos)

		snap.Aspects = append(snap.Aspects, transitAspects(natal, pos)...)

		switch p {
		case contracts.Saturn:
			switch natalMoonSign.DistanceTo(sign) {
			case 12:
				snap.SadeSati = SadeSatiRising
			case 1:
				snap.SadeSati = SadeSatiPeak
			case 2:
				snap.SadeSati = SadeSatiSetting
			}
			snap.SaturnReturn = sign == natal.Planets[contracts.Saturn].Sign
		case contracts.Jupiter:
			snap.JupiterReturn = sign == natal.Planets[contracts.Jupiter].Sign
		}
	}

	e.logger.WithFields(map[string]interface{}{
		"at":        at.Format(time.RFC3339),
		"sade_sati": string(snap.SadeSati),
	}).Debug("computed transit snapshot")

	return snap, nil
}

// drishtiOffset is one whole-house aspect cast by a transiting planet.
type drishtiOffset struct {
	n    int
	kind contracts.AspectKind
}

// transitAspects lists the whole-house drishti a transiting planet casts
// onto the natal framework: the universal 7th plus the special aspects.
func transitAspects(natal *contracts.Chart, pos contracts.PlanetPosition) []contracts.Aspect {
	offsets := []drishtiOffset{{7, contracts.AspectFull}}
	switch pos.Planet {
	case contracts.Mars:
		offsets = append(offsets, drishtiOffset{4, contracts.AspectSpecial}, drishtiOffset{8, contracts.AspectSpecial})
	case contracts.Jupiter:
		offsets = append(offsets, drishtiOffset{5, contracts.AspectSpecial}, drishtiOffset{9, contracts.AspectSpecial})
	case contracts.Saturn:
		offsets = append(offsets, drishtiOffset{3, contracts.AspectSpecial}, drishtiOffset{10, contracts.AspectSpecial})
	}

	var out []contracts.Aspect
	for _, off := range offsets {
		target := ((pos.House-1)+(off.n-1))%12 + 1
		out = append(out, contracts.Aspect{
			Source:      pos.Planet,
			SourceName:  pos.Name,
			TargetHouse: target,
			TargetSign:  natal.HouseSign(target),
			Targets:     natal.PlanetsInHouse(target),
			Kind:        off.kind,
			Strength:    1.0,
		})
	}
	return out
}
