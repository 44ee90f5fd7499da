package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalatrix/scalatrix/label"
)

var scaleFlags struct {
	baseFreq float64
	nodes    int
	root     int
}

type scaleRow struct {
	Index   int     `yaml:"index"`
	X       int     `yaml:"x"`
	Y       int     `yaml:"y"`
	Log2Fr  float64 `yaml:"log2fr"`
	PitchHz float64 `yaml:"pitch_hz"`
	Label   string  `yaml:"label"`
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "generate a scale and print its node table",
	Long: `Derives a MOS, replicates its reference period into a scale of the
requested length, and prints one row per node: lattice coordinate,
log2 frequency ratio, pitch and label.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMOS()
		if err != nil {
			return err
		}
		sc, err := m.GenerateScale(scaleFlags.baseFreq, scaleFlags.nodes, scaleFlags.root)
		if err != nil {
			return err
		}
		calc, err := label.NewCalculator()
		if err != nil {
			return err
		}

		rows := make([]scaleRow, sc.Len())
		for i, node := range sc.Nodes() {
			rows[i] = scaleRow{
				Index:   i,
				X:       node.NaturalCoord.X,
				Y:       node.NaturalCoord.Y,
				Log2Fr:  node.TuningCoord.X,
				PitchHz: node.Pitch,
				Label:   calc.NoteLabelNormalized(m, node.NaturalCoord, false),
			}
		}
		if outputFormat == "yaml" {
			return emitYAML(cmd, rows)
		}

		w := cmd.OutOrStdout()
		for _, r := range rows {
			fmt.Fprintf(w, "%3d  (%3d,%3d)  %9.6f  %12.5f Hz  %s\n",
				r.Index, r.X, r.Y, r.Log2Fr, r.PitchHz, r.Label)
		}
		return nil
	},
}

func init() {
	addMOSFlags(scaleCmd)
	scaleCmd.Flags().Float64Var(&scaleFlags.baseFreq, "base-freq", 261.6255653006, "root frequency in Hz")
	scaleCmd.Flags().IntVarP(&scaleFlags.nodes, "nodes", "n", 15, "number of nodes")
	scaleCmd.Flags().IntVar(&scaleFlags.root, "root", 7, "root node index")
	rootCmd.AddCommand(scaleCmd)
}
