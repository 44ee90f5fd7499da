package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var outputFormat string

// rootCmd is the entry point of the scalatrix inspection tool.
var rootCmd = &cobra.Command{
	Use:   "scalatrix",
	Short: "inspect MOS scales, tunings and consonance",
	Long: `scalatrix generates musical scales from a lattice model and prints
their structure: MOS derived fields, node tables with labels and
pitches, and consonance scores of scale intervals for a chosen timbre.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "output format: text or yaml")
}

// emitYAML marshals v to the command's stdout.
func emitYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
