package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
	"github.com/KaramelBytes/flamingo-cli/internal/charts"
	"github.com/KaramelBytes/flamingo-cli/internal/pipeline"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the population charts",
	Long:  `Render the species distribution and growth rate charts into the output directory without printing the analysis sections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		t, err := loadTable(cmd.OutOrStdout(), c.DataFile)
		if err != nil {
			return err
		}
		pop, err := analysis.AnalyzePopulation(t)
		if err != nil {
			return err
		}
		r := pipeline.New(t, cmd.OutOrStdout(), c.OutputDir)
		r.Chart = charts.Options{WidthIn: c.ChartWidth, HeightIn: c.ChartHeight, DPI: c.ChartDPI}
		return r.Charts(pop)
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}
