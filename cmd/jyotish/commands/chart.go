package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/jyotish/internal/contracts"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute the full natal chart",
	Long: `Computes the complete natal chart for a birth moment: sidereal
positions for the nine grahas, ascendant and house cusps, the requested
divisional charts, the Vimshottari dasha tree, planetary relationships,
shadbala, ashtakavarga and detected yogas.

Example:
  go run ./cmd/jyotish chart --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
	addBirthFlags(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
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
		return printJSON(result)
	}

	fmt.Printf("Ascendant: %s %s  (%s, %s ayanamsha %.4f)\n\n",
		result.AscendantSign, formatDegree(contracts.DegreeInSign(result.Ascendant)),
		result.HouseSystem, result.Ayanamsha, result.AyanamshaValue)

	fmt.Println("Planets:")
	for _, p := range result.Planets {
		fmt.Printf("  %-8s %-11s %s%s  house %2d  %s pada %d\n",
			p.Name, p.SignName, formatDegree(p.Degree), retroMark(p.Retrograde),
			p.House, p.Nakshatra, p.Pada)
	}

	if len(result.DivisionalCharts) > 0 {
		fmt.Println("\nDivisional charts:")
		for _, tag := range sortedVargaTags(result.DivisionalCharts) {
			dc := result.DivisionalCharts[tag]
			fmt.Printf("  %-4s asc %s:", dc.Tag, dc.AscendantSign)
			for _, p := range contracts.AllPlanets() {
				fmt.Printf("  %s %s", p, dc.Signs[p])
			}
			fmt.Println()
		}
	}

	fmt.Println("\nShadbala (normalized 0-10):")
	for _, p := range contracts.SevenPlanets() {
		b := result.Shadbala[p.String()]
		fmt.Printf("  %-8s %.2f\n", p, b.Normalized)
	}

	fmt.Printf("\nSarvashtakavarga: %v  (total %d)\n", result.Ashtakavarga.Sarva, result.Ashtakavarga.TotalBindus())

	if len(result.Yogas) > 0 {
		fmt.Println("\nYogas:")
		for _, y := range result.Yogas {
			fmt.Printf("  %-22s %s\n", y.Name, y.Significance)
		}
	}

	return nil
}

// sortedVargaTags orders divisional chart tags by division number.
func sortedVargaTags(charts map[string]contracts.DivisionalChart) []string {
	type entry struct {
		tag string
		n   int
	}
	entries := make([]entry, 0, len(charts))
	for tag, dc := range charts {
		entries = append(entries, entry{tag, dc.Division})
	}
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].n < entries[j-1].n; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.tag
	}
	return out
}
