package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	chartConfigFile string
	verbose         bool
	jsonOutput      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Vedic astrology calculation engine",
	Long: `Jyotish CLI

Sidereal chart computation from birth data: planetary positions,
houses, divisional charts, Vimshottari dasha, strengths and yogas.

Usage:
  go run ./cmd/jyotish [command]

Examples:
  go run ./cmd/jyotish chart --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15
  go run ./cmd/jyotish dasha --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15
  go run ./cmd/jyotish transit --date 1963-09-06 --time 11:00 --tz Asia/Kolkata --lat 17.25 --lon 80.15`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&chartConfigFile, "chart-config", "", "YAML calculation preferences file (default from CHART_CONFIG_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit raw JSON instead of formatted output")
}
