package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/wonny/jyotish/internal/transit"
)

var watchSchedule string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate transits on a schedule",
	Long: `Computes the natal chart once, then re-evaluates the transit
snapshot on a cron schedule and prints each result. Phase changes (Sade
Sati entering or leaving, returns starting) are worth watching daily.

The watcher runs until Ctrl+C.

Example:
  go run ./cmd/jyotish watch --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15 --schedule "0 6 * * *"`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addBirthFlags(watchCmd)
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "@daily", "cron schedule for re-evaluation")
}

func runWatch(cmd *cobra.Command, args []string) error {
	eng, cfg, profile, log, err := initEngine()
	if err != nil {
		return err
	}

	req, err := parseBirthRequest(cfg, profile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	natal, corrector, err := eng.Natal(ctx, req)
	if err != nil {
		return fmt.Errorf("compute natal chart: %w", err)
	}
	trEng := transit.NewEngine(eng.Provider(req.Prefs), corrector, log)

	evaluate := func() {
		snap, err := trEng.Snapshot(ctx, natal, time.Now().UTC())
		if err != nil {
			log.WithError(err).Error("transit evaluation failed")
			return
		}
		printSnapshot(snap)
		fmt.Println()
	}

	c := cron.New()
	if _, err := c.AddFunc(watchSchedule, evaluate); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", watchSchedule, err)
	}

	// First evaluation immediately, then on schedule
	evaluate()
	c.Start()

	fmt.Printf("Watching transits on schedule %q, Ctrl+C to stop\n", watchSchedule)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	stopCtx := c.Stop()
	<-stopCtx.Done()
	fmt.Println("Watcher stopped")

	return nil
}
