package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/jyotish/internal/contracts"
)

var (
	dashaDepth int
	dashaAt    string
)

// dashaCmd represents the dasha command
var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Compute the Vimshottari dasha timeline",
	Long: `Computes the Vimshottari dasha tree from the natal Moon: nine
mahadashas covering the 120-year cycle, subdivided into antardashas and
pratyantardashas. With --at, also reports the periods running at that
instant.

Example:
  go run ./cmd/jyotish dasha --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15 --at 2026-01-01`,
	RunE: runDasha,
}

func init() {
	rootCmd.AddCommand(dashaCmd)
	addBirthFlags(dashaCmd)
	dashaCmd.Flags().IntVar(&dashaDepth, "depth", 2, "levels to print: 1 mahadasha, 2 +antardasha, 3 +pratyantardasha")
	dashaCmd.Flags().StringVar(&dashaAt, "at", "", "report active periods at this date, YYYY-MM-DD (default now)")
}

func runDasha(cmd *cobra.Command, args []string) error {
	eng, cfg, profile, _, err := initEngine()
	if err != nil {
		return err
	}

	req, err := parseBirthRequest(cfg, profile)
	if err != nil {
		return err
	}

	result, err := eng.Compute(context.Background(), req)
	if err != nil {
		return fmt.Errorf("compute chart: %w", err)
	}
	tree := result.DashaTree

	if jsonOutput {
		return printJSON(tree)
	}

	fmt.Printf("Birth lord: %s  balance %.2f years\n\n", tree.BirthLord, tree.Balance)

	for i, md := range tree.Periods {
		if md.Level != contracts.Mahadasha {
			continue
		}
		fmt.Printf("%s  %s - %s\n", md.Name, md.Start.Format("2006-01-02"), md.End.Format("2006-01-02"))
		if dashaDepth < 2 {
			continue
		}
		for j, ad := range tree.Periods {
			if ad.Level != contracts.Antardasha || ad.Parent != i {
				continue
			}
			fmt.Printf("  %s/%s  %s - %s\n", md.Name, ad.Name,
				ad.Start.Format("2006-01-02"), ad.End.Format("2006-01-02"))
			if dashaDepth < 3 {
				continue
			}
			for _, pd := range tree.Children(j) {
				fmt.Printf("    %s/%s/%s  %s - %s\n", md.Name, ad.Name, pd.Name,
					pd.Start.Format("2006-01-02"), pd.End.Format("2006-01-02"))
			}
		}
	}

	at := time.Now().UTC()
	if dashaAt != "" {
		at, err = time.Parse("2006-01-02", dashaAt)
		if err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
	}
	active := tree.ActiveAt(at)
	if len(active) > 0 {
		fmt.Printf("\nActive at %s:\n", at.Format("2006-01-02"))
		for _, p := range active {
			fmt.Printf("  %-16s %s  %s - %s\n", p.Level, p.Name,
				p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
		}
	}

	return nil
}
