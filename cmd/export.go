package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
	"github.com/KaramelBytes/flamingo-cli/internal/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the computed breakdowns to an Excel workbook",
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
		geo := analysis.AnalyzeGeography(t)
		cons := analysis.AnalyzeConservation(t)
		st, err := analysis.AnalyzeStatistics(t)
		if err != nil {
			return err
		}
		return pipeline.New(t, cmd.OutOrStdout(), c.OutputDir).ExportWorkbook(pop, geo, cons, st)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
