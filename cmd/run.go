package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/flamingo-cli/internal/charts"
	"github.com/KaramelBytes/flamingo-cli/internal/pipeline"
)

var runExportXLSX bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis pipeline",
	Long:  `Load the survey dataset, print every analysis section, render both charts, and write the summary report into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		t, err := loadTable(cmd.OutOrStdout(), c.DataFile)
		if err != nil {
			return err
		}
		r := pipeline.New(t, cmd.OutOrStdout(), c.OutputDir)
		r.HeadRows = c.HeadRows
		r.Chart = charts.Options{WidthIn: c.ChartWidth, HeightIn: c.ChartHeight, DPI: c.ChartDPI}
		r.Export = runExportXLSX
		return r.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runExportXLSX, "export", false, "also export the breakdowns to an Excel workbook")
}
