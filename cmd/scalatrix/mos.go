package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalatrix/scalatrix/mos"
)

var mosFlags struct {
	a, b, mode  int
	equave      float64
	generator   float64
	repetitions int
	depth       int
}

// mosInfo is the YAML shape of the derived-field dump.
type mosInfo struct {
	A           int     `yaml:"a"`
	B           int     `yaml:"b"`
	N           int     `yaml:"n"`
	A0          int     `yaml:"a0"`
	B0          int     `yaml:"b0"`
	N0          int     `yaml:"n0"`
	Mode        int     `yaml:"mode"`
	Repetitions int     `yaml:"repetitions"`
	Depth       int     `yaml:"depth"`
	Equave      float64 `yaml:"equave"`
	Period      float64 `yaml:"period"`
	Generator   float64 `yaml:"generator"`
	Path        string  `yaml:"path"`
	VGen        [2]int  `yaml:"v_gen"`
	LFr         float64 `yaml:"l_fr"`
	SFr         float64 `yaml:"s_fr"`
	ChromaFr    float64 `yaml:"chroma_fr"`
}

var mosCmd = &cobra.Command{
	Use:   "mos",
	Short: "derive and dump a MOS structure",
	Long: `Derives a MOS from step counts (or, with --depth, from the generator
alone) and prints every derived field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMOS()
		if err != nil {
			return err
		}

		info := mosInfo{
			A: m.A(), B: m.B(), N: m.N(),
			A0: m.A0(), B0: m.B0(), N0: m.N0(),
			Mode:        m.Mode(),
			Repetitions: m.Repetitions(),
			Depth:       m.Depth(),
			Equave:      m.Equave(),
			Period:      m.Period(),
			Generator:   m.Generator(),
			Path:        pathString(m.Path()),
			VGen:        [2]int{m.VGen().X, m.VGen().Y},
			LFr:         m.LFr(),
			SFr:         m.SFr(),
			ChromaFr:    m.ChromaFr(),
		}
		if outputFormat == "yaml" {
			return emitYAML(cmd, info)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "steps      %dL %ds (n=%d, %d period(s) of %d notes)\n",
			m.NL(), m.NS(), m.N(), m.Repetitions(), m.N0())
		fmt.Fprintf(w, "mode       %d\n", m.Mode())
		fmt.Fprintf(w, "equave     %.6f  period %.6f  generator %.6f\n",
			m.Equave(), m.Period(), m.Generator())
		fmt.Fprintf(w, "path       %s (depth %d)\n", info.Path, m.Depth())
		fmt.Fprintf(w, "v_gen      (%d,%d)\n", m.VGen().X, m.VGen().Y)
		fmt.Fprintf(w, "L %.6f  s %.6f  chroma %.6f\n", m.LFr(), m.SFr(), m.ChromaFr())
		return nil
	},
}

// buildMOS constructs the MOS the flags describe; --depth switches to
// the generator-unfolding constructor.
func buildMOS() (*mos.MOS, error) {
	if mosFlags.depth >= 0 {
		return mos.FromG(mosFlags.depth, mosFlags.mode, mosFlags.generator,
			mosFlags.equave, mosFlags.repetitions)
	}
	return mos.New(mosFlags.a, mosFlags.b, mosFlags.mode, mosFlags.equave, mosFlags.generator)
}

func pathString(p mos.Path) string {
	if len(p) == 0 {
		return "-"
	}
	s := ""
	for _, step := range p {
		s += step.String()
	}
	return s
}

func addMOSFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&mosFlags.a, "a", "a", 5, "large-side step count")
	cmd.Flags().IntVarP(&mosFlags.b, "b", "b", 2, "small-side step count")
	cmd.Flags().IntVar(&mosFlags.mode, "mode", 1, "mode rotation in [0, n0)")
	cmd.Flags().Float64Var(&mosFlags.equave, "equave", 1.0, "equave as log2 ratio")
	cmd.Flags().Float64VarP(&mosFlags.generator, "generator", "g", 0.585, "generator fraction of a period")
	cmd.Flags().IntVar(&mosFlags.repetitions, "repetitions", 1, "periods per equave (with --depth)")
	cmd.Flags().IntVar(&mosFlags.depth, "depth", -1, "derive step counts from the generator at this depth")
}

func init() {
	addMOSFlags(mosCmd)
	rootCmd.AddCommand(mosCmd)
}
