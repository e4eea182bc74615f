package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/jyotish/batch"
	"github.com/teranos/jyotish/chart"
	"github.com/teranos/jyotish/config"
	"github.com/teranos/jyotish/ephem"
	"github.com/teranos/jyotish/errors"
)

// BatchCmd computes charts for a YAML list of births.
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compute charts for a YAML list of births",
	Long: `Read a YAML list of births and compute each chart over the worker
pool. Jobs are independent: one bad birth fails alone and the rest
complete.

Input file format:

  - time: 1990-05-15T09:00:00Z
    latitude: 28.6139
    longitude: 77.2090
  - time: 1984-11-02T03:30:00Z
    latitude: 19.0760
    longitude: 72.8777`,
	RunE: runBatch,
}

func init() {
	BatchCmd.Flags().String("file", "", "YAML file with births (required)")
	BatchCmd.Flags().Int("workers", 0, "Worker count (default from config)")
	_ = BatchCmd.MarkFlagRequired("file")
}

// birthEntry is one YAML list item. The instant stays a string so parse
// failures carry the offending value instead of a YAML type error.
type birthEntry struct {
	Time      string  `yaml:"time"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	// Config is validated by the root command before any subcommand runs.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	inputs, err := readBirthsFile(path, cfg)
	if err != nil {
		return err
	}

	poolCfg := batch.Config{
		Workers:       cfg.Batch.Workers,
		ProviderRate:  cfg.Batch.ProviderRate,
		ProviderBurst: cfg.Batch.ProviderBurst,
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		poolCfg.Workers = workers
	}

	pool, err := batch.NewPool(poolCfg, ephem.MeanProvider{}, cfg.Engine.Strength)
	if err != nil {
		return err
	}

	results := pool.Run(cmd.Context(), inputs)

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "%3d  %s  FAILED: %v\n", r.Index+1, r.Input.Instant.Format(time.RFC3339), r.Err)
			continue
		}
		s := r.Chart.Summary()
		fmt.Fprintf(out, "%3d  %s  asc %-11s  yogas %d  grade %s\n",
			r.Index+1, r.Input.Instant.Format(time.RFC3339), s.Ascendant.Sign, s.YogaCount, s.Grade)
	}
	fmt.Fprintf(out, "\n%d charts computed, %d failed\n", len(results)-failed, failed)

	if failed > 0 {
		return errors.Newf("%d of %d charts failed", failed, len(results))
	}
	return nil
}

func readBirthsFile(path string, cfg *config.Config) ([]chart.BirthInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading births file %s", path)
	}

	var entries []birthEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "parsing births file %s", path)
	}
	if len(entries) == 0 {
		return nil, errors.Inputf("births file %s contains no entries", path)
	}

	ay, err := cfg.Engine.ParseAyanamsa()
	if err != nil {
		return nil, err
	}
	hs, err := cfg.Engine.ParseHouseSystem()
	if err != nil {
		return nil, err
	}

	inputs := make([]chart.BirthInput, 0, len(entries))
	for i, e := range entries {
		instant, err := time.Parse(time.RFC3339, e.Time)
		if err != nil {
			return nil, errors.Inputf("entry %d: invalid time %q: must be RFC 3339", i+1, e.Time)
		}
		inputs = append(inputs, chart.BirthInput{
			Instant:     instant.UTC(),
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			Ayanamsa:    ay,
			HouseSystem: hs,
		})
	}
	return inputs, nil
}
