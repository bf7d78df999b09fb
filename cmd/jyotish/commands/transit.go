package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/jyotish/internal/transit"
)

var transitAt string

// transitCmd represents the transit command
var transitCmd = &cobra.Command{
	Use:   "transit",
	Short: "Map current sky positions onto a natal chart",
	Long: `Computes transiting positions at an instant and maps them onto
the natal whole-sign framework: occupied natal houses, drishti onto natal
houses, Sade Sati phase and Saturn/Jupiter returns.

Example:
  go run ./cmd/jyotish transit --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15 --at 2026-08-23T12:00:00Z`,
	RunE: runTransit,
}

func init() {
	rootCmd.AddCommand(transitCmd)
	addBirthFlags(transitCmd)
	transitCmd.Flags().StringVar(&transitAt, "at", "", "query instant, RFC3339 or YYYY-MM-DD (default now)")
}

func runTransit(cmd *cobra.Command, args []string) error {
	eng, cfg, profile, log, err := initEngine()
	if err != nil {
		return err
	}

	req, err := parseBirthRequest(cfg, profile)
	if err != nil {
		return err
	}

	at, err := parseInstant(transitAt)
	if err != nil {
		return err
	}

	ctx := context.Background()
	natal, corrector, err := eng.Natal(ctx, req)
	if err != nil {
		return fmt.Errorf("compute natal chart: %w", err)
	}

	trEng := transit.NewEngine(eng.Provider(req.Prefs), corrector, log)
	snap, err := trEng.Snapshot(ctx, natal, at)
	if err != nil {
		return fmt.Errorf("compute transit snapshot: %w", err)
	}

	if jsonOutput {
		return printJSON(snap)
	}

	printSnapshot(snap)
	return nil
}

func printSnapshot(snap *transit.Snapshot) {
	fmt.Printf("Transits at %s:\n", snap.At.Format(time.RFC3339))
	for _, p := range snap.Positions {
		fmt.Printf("  %-8s %-11s %s%s  natal house %2d\n",
			p.Name, p.SignName, formatDegree(p.Degree), retroMark(p.Retrograde), p.House)
	}
	if snap.SadeSati != transit.SadeSatiNone {
		fmt.Printf("\nSade Sati: %s\n", snap.SadeSati)
	}
	if snap.SaturnReturn {
		fmt.Println("Saturn return in progress")
	}
	if snap.JupiterReturn {
		fmt.Println("Jupiter return in progress")
	}
}

// parseInstant accepts RFC3339 or a bare date; empty means now.
func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --at %q: want RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}
