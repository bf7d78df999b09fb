package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// yogasCmd represents the yogas command
var yogasCmd = &cobra.Command{
	Use:   "yogas",
	Short: "List detected yoga combinations",
	Long: `Computes the natal chart and reports every classical yoga the
registry detects, with the participating planets and houses.

Example:
  go run ./cmd/jyotish yogas --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15`,
	RunE: runYogas,
}

func init() {
	rootCmd.AddCommand(yogasCmd)
	addBirthFlags(yogasCmd)
}

func runYogas(cmd *cobra.Command, args []string) error {
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

	if jsonOutput {
		return printJSON(result.Yogas)
	}

	if len(result.Yogas) == 0 {
		fmt.Println("No yogas detected")
		return nil
	}

	for _, y := range result.Yogas {
		fmt.Printf("%-22s", y.Name)
		if len(y.Planets) > 0 {
			fmt.Printf("  planets %v", y.Planets)
		}
		if len(y.Houses) > 0 {
			fmt.Printf("  houses %v", y.Houses)
		}
		fmt.Printf("\n  %s\n", y.Significance)
	}

	return nil
}
