package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalatrix/scalatrix/consonance"
	"github.com/scalatrix/scalatrix/label"
	"github.com/scalatrix/scalatrix/spectrum"
)

var consFlags struct {
	f0       float64
	partials int
	decay    float64
	odd      bool
}

type consonanceReport struct {
	Intervals []intervalRow `yaml:"intervals"`
	Mean      float64       `yaml:"mean"`
	Total     float64       `yaml:"total"`
}

type intervalRow struct {
	Name       string  `yaml:"name"`
	Cents      float64 `yaml:"cents"`
	Consonance float64 `yaml:"consonance"`
}

var consonanceCmd = &cobra.Command{
	Use:   "consonance",
	Short: "score the intervals of a MOS scale against a timbre",
	Long: `Derives a MOS, takes the intervals of one equave of its scale, and
scores each against a harmonic (or odd-harmonic) spectrum using the
Plomp-Levelt roughness model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMOS()
		if err != nil {
			return err
		}
		calc, err := label.NewCalculator()
		if err != nil {
			return err
		}

		var spec spectrum.Spectrum
		if consFlags.odd {
			spec = spectrum.OddHarmonic(2*consFlags.partials-1, consFlags.decay)
		} else {
			spec = spectrum.Harmonic(consFlags.partials, consFlags.decay)
		}

		nodes := m.BaseScale().Nodes()
		intervals := make([]consonance.Interval, 0, len(nodes)-1)
		for _, node := range nodes[1:] {
			intervals = append(intervals, consonance.Interval{
				Name:  calc.NoteLabelNormalized(m, node.NaturalCoord, false),
				Cents: 1200 * node.TuningCoord.X,
			})
		}
		maxCents := 1200 * m.Equave()
		res, err := consonance.AnalyzeScale(spec, consFlags.f0, intervals, maxCents, maxCents)
		if err != nil {
			return err
		}

		report := consonanceReport{Mean: res.Mean, Total: res.Total}
		for _, iv := range res.Intervals {
			report.Intervals = append(report.Intervals, intervalRow{iv.Name, iv.Cents, iv.Consonance})
		}
		if outputFormat == "yaml" {
			return emitYAML(cmd, report)
		}

		w := cmd.OutOrStdout()
		for _, iv := range report.Intervals {
			fmt.Fprintf(w, "%-6s %9.3f ct  %.3f\n", iv.Name, iv.Cents, iv.Consonance)
		}
		fmt.Fprintf(w, "mean %.3f  total %.3f\n", report.Mean, report.Total)
		return nil
	},
}

func init() {
	addMOSFlags(consonanceCmd)
	consonanceCmd.Flags().Float64Var(&consFlags.f0, "f0", 500, "lower tone frequency in Hz")
	consonanceCmd.Flags().IntVar(&consFlags.partials, "partials", 8, "number of partials")
	consonanceCmd.Flags().Float64Var(&consFlags.decay, "decay", spectrum.DefaultDecay, "amplitude decay per partial")
	consonanceCmd.Flags().BoolVar(&consFlags.odd, "odd", false, "odd harmonics only")
	rootCmd.AddCommand(consonanceCmd)
}
