package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/jyotish/chart"
	"github.com/teranos/jyotish/cmd/jyotish/commands"
	"github.com/teranos/jyotish/config"
	"github.com/teranos/jyotish/logger"
)

var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "jyotish - Vedic birth chart engine",
	Long: `jyotish - sidereal birth chart computation and analysis.

Computes graha placements, bhavas, drishti aspects, Panchadha Maitri
dignities, combustion, lordship analysis, house strengths and yoga
detection from a birth instant and location.

Available commands:
  chart   - Compute and print one birth chart
  batch   - Compute charts for a YAML list of births
  version - Show version information

Examples:
  jyotish chart --time 1990-05-15T09:00:00Z --lat 28.6139 --lon 77.2090
  jyotish chart --time 1990-05-15T09:00:00Z --lat 28.6139 --lon 77.2090 --out chart.toml
  jyotish batch --file births.yaml --workers 8`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := chart.ValidateTables(); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ChartCmd)
	rootCmd.AddCommand(commands.BatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
