package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the analysis sections without writing any files",
	Long:  `Print the population, geographic, conservation, and statistical sections to the console. Nothing is written to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		out := cmd.OutOrStdout()
		t, err := loadTable(out, c.DataFile)
		if err != nil {
			return err
		}
		pop, err := analysis.AnalyzePopulation(t)
		if err != nil {
			return err
		}
		pop.Render(out)
		analysis.AnalyzeGeography(t).Render(out)
		analysis.AnalyzeConservation(t).Render(out)
		st, err := analysis.AnalyzeStatistics(t)
		if err != nil {
			return err
		}
		st.Render(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
