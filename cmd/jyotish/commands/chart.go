package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/teranos/jyotish/bhava"
	"github.com/teranos/jyotish/chart"
	"github.com/teranos/jyotish/config"
	"github.com/teranos/jyotish/ephem"
	"github.com/teranos/jyotish/errors"
)

// ChartCmd computes and prints one birth chart.
var ChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute and print one birth chart",
	Long: `Compute a sidereal birth chart from a UTC instant and location.

Ayanamsa and house system default from configuration and can be
overridden per invocation. With --out the full chart is also written
as a TOML file.`,
	RunE: runChart,
}

func init() {
	ChartCmd.Flags().String("time", "", "Birth instant, RFC 3339 UTC (required)")
	ChartCmd.Flags().Float64("lat", 0, "Latitude in degrees, positive north (required)")
	ChartCmd.Flags().Float64("lon", 0, "Longitude in degrees, positive east (required)")
	ChartCmd.Flags().String("ayanamsa", "", "Ayanamsa system (default from config)")
	ChartCmd.Flags().String("house-system", "", "House system (default from config)")
	ChartCmd.Flags().String("out", "", "Write the full chart to this TOML file")
	_ = ChartCmd.MarkFlagRequired("time")
	_ = ChartCmd.MarkFlagRequired("lat")
	_ = ChartCmd.MarkFlagRequired("lon")
}

func runChart(cmd *cobra.Command, args []string) error {
	// Config is validated by the root command before any subcommand runs.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	in, err := birthInputFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	c, err := chart.Compute(cmd.Context(), in, ephem.MeanProvider{}, cfg.Engine.Strength)
	if err != nil {
		return err
	}

	printChart(cmd, c)

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeChartTOML(c, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nChart written to %s\n", out)
	}
	return nil
}

func birthInputFromFlags(cmd *cobra.Command, cfg *config.Config) (chart.BirthInput, error) {
	instantStr, _ := cmd.Flags().GetString("time")
	instant, err := time.Parse(time.RFC3339, instantStr)
	if err != nil {
		return chart.BirthInput{}, errors.Inputf("invalid --time %q: must be RFC 3339", instantStr)
	}

	ayName, _ := cmd.Flags().GetString("ayanamsa")
	if ayName == "" {
		ayName = cfg.Engine.Ayanamsa
	}
	ay, err := ephem.ParseAyanamsa(ayName)
	if err != nil {
		return chart.BirthInput{}, err
	}

	hsName, _ := cmd.Flags().GetString("house-system")
	if hsName == "" {
		hsName = cfg.Engine.HouseSystem
	}
	hs, err := bhava.ParseSystem(hsName)
	if err != nil {
		return chart.BirthInput{}, err
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")

	return chart.BirthInput{
		Instant:     instant.UTC(),
		Latitude:    lat,
		Longitude:   lon,
		Ayanamsa:    ay,
		HouseSystem: hs,
	}, nil
}

func printChart(cmd *cobra.Command, c *chart.Chart) {
	out := cmd.OutOrStdout()

	asc := c.Ascendant()
	fmt.Fprintf(out, "Ascendant: %s %.2f° (%s pada %d)\n\n",
		asc.Sign, asc.Degree, asc.Nakshatra, asc.Pada)

	fmt.Fprintln(out, "Grahas:")
	for _, g := range c.GrahaPositions() {
		retro := ""
		if g.Retrograde {
			retro = " (R)"
		}
		combust := ""
		if g.Combust {
			combust = "  combust"
		}
		fmt.Fprintf(out, "  %-8s %-11s %6.2f°%s  house %-2d  %-13s %s%s\n",
			g.Graha, g.Sign, g.Degree, retro, g.House, g.Dignity.Status, g.Nature, combust)
	}

	fmt.Fprintln(out, "\nKarakas:")
	for _, k := range c.Karakas() {
		fmt.Fprintf(out, "  %-4s %-15s %-8s %6.2f°\n",
			k.Karaka.Abbreviation(), k.Karaka, k.Graha, k.Degree)
	}

	fmt.Fprintln(out, "\nBhavas:")
	strengths := c.HouseStrengths()
	for i, b := range c.Bhavas() {
		fmt.Fprintf(out, "  %2d  %-11s lord %-8s strength %6.2f  occupants %v\n",
			b.Number, b.Sign, b.Lord, strengths[i].Score, b.Occupants)
	}

	yogas := c.Yogas()
	if len(yogas) > 0 {
		fmt.Fprintln(out, "\nYogas:")
		for _, y := range yogas {
			fmt.Fprintf(out, "  %-16s %s\n", y.Name, y.Detail)
		}
	}

	s := c.Summary()
	fmt.Fprintf(out, "\nStrongest grahas: %v\n", s.StrongestGrahas)
	fmt.Fprintf(out, "Strongest bhava: %d, weakest: %d\n", s.StrongestBhava, s.WeakestBhava)
	fmt.Fprintf(out, "Grade: %s\n", s.Grade)
}

// chartExport is the TOML file shape for one chart.
type chartExport struct {
	Input     inputExport   `toml:"input"`
	Ascendant ascExport     `toml:"ascendant"`
	Grahas    []grahaExport  `toml:"graha"`
	Karakas   []karakaExport `toml:"karaka"`
	Bhavas    []bhavaExport  `toml:"bhava"`
	Yogas     []yogaExport   `toml:"yoga"`
	Grade     string         `toml:"grade"`
}

type inputExport struct {
	Instant     string  `toml:"instant"`
	Latitude    float64 `toml:"latitude"`
	Longitude   float64 `toml:"longitude"`
	Ayanamsa    string  `toml:"ayanamsa"`
	HouseSystem string  `toml:"house_system"`
}

type ascExport struct {
	Longitude float64 `toml:"longitude"`
	Sign      string  `toml:"sign"`
	Degree    float64 `toml:"degree"`
	Nakshatra string  `toml:"nakshatra"`
	Pada      int     `toml:"pada"`
}

type grahaExport struct {
	Name       string  `toml:"name"`
	Longitude  float64 `toml:"longitude"`
	Sign       string  `toml:"sign"`
	Degree     float64 `toml:"degree"`
	Nakshatra  string  `toml:"nakshatra"`
	Pada       int     `toml:"pada"`
	House      int     `toml:"house"`
	Retrograde bool    `toml:"retrograde"`
	Combust    bool    `toml:"combust"`
	Dignity    string  `toml:"dignity"`
	Score      int     `toml:"score"`
	Nature     string  `toml:"nature"`
}

type karakaExport struct {
	Karaka       string  `toml:"karaka"`
	Abbreviation string  `toml:"abbreviation"`
	Graha        string  `toml:"graha"`
	Degree       float64 `toml:"degree"`
}

type bhavaExport struct {
	Number    int      `toml:"number"`
	Cusp      float64  `toml:"cusp"`
	Sign      string   `toml:"sign"`
	Lord      string   `toml:"lord"`
	Occupants []string `toml:"occupants"`
	Strength  float64  `toml:"strength"`
}

type yogaExport struct {
	Name         string   `toml:"name"`
	Kind         string   `toml:"kind"`
	Participants []string `toml:"participants"`
	Houses       []int    `toml:"houses"`
	Detail       string   `toml:"detail"`
}

func writeChartTOML(c *chart.Chart, path string) error {
	in := c.Input()
	asc := c.Ascendant()
	export := chartExport{
		Input: inputExport{
			Instant:     in.Instant.Format(time.RFC3339),
			Latitude:    in.Latitude,
			Longitude:   in.Longitude,
			Ayanamsa:    in.Ayanamsa.String(),
			HouseSystem: in.HouseSystem.String(),
		},
		Ascendant: ascExport{
			Longitude: asc.Longitude,
			Sign:      asc.Sign.String(),
			Degree:    asc.Degree,
			Nakshatra: asc.Nakshatra.String(),
			Pada:      asc.Pada,
		},
		Grade: c.Summary().Grade,
	}

	for _, g := range c.GrahaPositions() {
		export.Grahas = append(export.Grahas, grahaExport{
			Name:       g.Graha.String(),
			Longitude:  g.Longitude,
			Sign:       g.Sign.String(),
			Degree:     g.Degree,
			Nakshatra:  g.Nakshatra.String(),
			Pada:       g.Pada,
			House:      g.House,
			Retrograde: g.Retrograde,
			Combust:    g.Combust,
			Dignity:    g.Dignity.Status.String(),
			Score:      g.Dignity.Score,
			Nature:     g.Nature.String(),
		})
	}

	for _, k := range c.Karakas() {
		export.Karakas = append(export.Karakas, karakaExport{
			Karaka:       k.Karaka.String(),
			Abbreviation: k.Karaka.Abbreviation(),
			Graha:        k.Graha.String(),
			Degree:       k.Degree,
		})
	}

	strengths := c.HouseStrengths()
	for i, b := range c.Bhavas() {
		occupants := make([]string, 0, len(b.Occupants))
		for _, o := range b.Occupants {
			occupants = append(occupants, o.String())
		}
		export.Bhavas = append(export.Bhavas, bhavaExport{
			Number:    b.Number,
			Cusp:      b.Cusp,
			Sign:      b.Sign.String(),
			Lord:      b.Lord.String(),
			Occupants: occupants,
			Strength:  strengths[i].Score,
		})
	}

	for _, y := range c.Yogas() {
		participants := make([]string, 0, len(y.Participants))
		for _, p := range y.Participants {
			participants = append(participants, p.String())
		}
		export.Yogas = append(export.Yogas, yogaExport{
			Name:         y.Name,
			Kind:         y.Kind.String(),
			Participants: participants,
			Houses:       y.Houses,
			Detail:       y.Detail,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(export); err != nil {
		return errors.Wrapf(err, "encoding chart to %s", path)
	}
	return nil
}
