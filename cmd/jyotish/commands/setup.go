package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/jyotish/internal/chartconfig"
	"github.com/wonny/jyotish/internal/contracts"
	"github.com/wonny/jyotish/internal/engine"
	"github.com/wonny/jyotish/pkg/config"
	"github.com/wonny/jyotish/pkg/logger"
)

// Birth data flags shared by every computation command.
var (
	birthDate   string
	birthTime   string
	birthTZ     string
	birthLat    float64
	birthLon    float64
	ayanamshaFl string
	houseSysFl  string
	nodeModeFl  string
	vargasFl    string
)

// addBirthFlags registers the shared birth data flag set on a command.
func addBirthFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&birthDate, "date", "", "birth date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&birthTime, "time", "", "birth clock time, HH:MM or HH:MM:SS (required)")
	cmd.Flags().StringVar(&birthTZ, "tz", "", "IANA timezone of the birth place, e.g. Asia/Kolkata")
	cmd.Flags().Float64Var(&birthLat, "lat", 0, "birth latitude in degrees, north positive")
	cmd.Flags().Float64Var(&birthLon, "lon", 0, "birth longitude in degrees, east positive")
	cmd.Flags().StringVar(&ayanamshaFl, "ayanamsha", "", "ayanamsha model (lahiri|raman|kp|yukteshwar|fagan_bradley)")
	cmd.Flags().StringVar(&houseSysFl, "house-system", "", "house system (whole_sign|equal|placidus|koch)")
	cmd.Flags().StringVar(&nodeModeFl, "node-mode", "", "lunar node mode (mean|true)")
	cmd.Flags().StringVar(&vargasFl, "vargas", "", "comma-separated divisional charts, e.g. 1,9,10")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
}

// parseBirthRequest resolves the flag set into a BirthRequest, layering
// CLI flags over the chart config profile over environment defaults.
func parseBirthRequest(cfg *config.Config, profile *chartconfig.Config) (contracts.BirthRequest, error) {
	var req contracts.BirthRequest

	if birthDate == "" || birthTime == "" {
		return req, fmt.Errorf("both --date and --time are required; charts for unknown birth times are not computed")
	}

	layout := "2006-01-02 15:04"
	if strings.Count(birthTime, ":") == 2 {
		layout = "2006-01-02 15:04:05"
	}
	loc := time.UTC
	if birthTZ != "" {
		var err error
		loc, err = time.LoadLocation(birthTZ)
		if err != nil {
			return req, fmt.Errorf("unknown timezone %q: %w", birthTZ, err)
		}
	}
	date, err := time.ParseInLocation(layout, birthDate+" "+birthTime, loc)
	if err != nil {
		return req, fmt.Errorf("parse birth date/time: %w", err)
	}

	prefs := profile.Preferences
	// Environment defaults apply below the profile, flags above it.
	if profile.Meta.ProfileID == "default" {
		prefs.Ayanamsha = contracts.AyanamshaModel(cfg.Ayanamsha)
		prefs.HouseSystem = contracts.HouseSystem(cfg.HouseSystem)
		prefs.NodeMode = contracts.NodeMode(cfg.NodeMode)
	}
	if ayanamshaFl != "" {
		prefs.Ayanamsha = contracts.AyanamshaModel(ayanamshaFl)
	}
	if houseSysFl != "" {
		prefs.HouseSystem = contracts.HouseSystem(houseSysFl)
	}
	if nodeModeFl != "" {
		prefs.NodeMode = contracts.NodeMode(nodeModeFl)
	}
	if vargasFl != "" {
		divisions, err := parseDivisions(vargasFl)
		if err != nil {
			return req, err
		}
		prefs.DivisionalCharts = divisions
	}

	return contracts.BirthRequest{
		Date:      date,
		TimeKnown: true,
		Latitude:  birthLat,
		Longitude: birthLon,
		Timezone:  birthTZ,
		Prefs:     prefs,
	}, nil
}

func parseDivisions(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid varga division %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// initEngine wires the full dependency chain: env config, logger, optional
// YAML preference profile, then the engine.
func initEngine() (*engine.Engine, *config.Config, *chartconfig.Config, *logger.Logger, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
		cfg.LogFormat = "console"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Load the preference profile, if one is configured
	profile := chartconfig.Default()
	path := chartConfigFile
	if path == "" {
		path = cfg.ChartConfigPath
	}
	if path != "" {
		profile, err = chartconfig.Load(path)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		hash, err := chartconfig.Hash(profile)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		log.WithFields(map[string]interface{}{
			"profile": profile.Meta.ProfileID,
			"hash":    hash[:12],
		}).Info("loaded chart config")
	}

	// 4. Create the engine
	eng := engine.New(engine.Options{
		EphemerisMinYear: cfg.EphemerisMinYear,
		EphemerisMaxYear: cfg.EphemerisMaxYear,
		CombustionOrbs:   profile.OrbOverrides(),
	}, log)

	return eng, cfg, profile, log, nil
}
