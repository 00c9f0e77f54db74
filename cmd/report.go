package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/flamingo-cli/internal/pipeline"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the summary report",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		t, err := loadTable(cmd.OutOrStdout(), c.DataFile)
		if err != nil {
			return err
		}
		return pipeline.New(t, cmd.OutOrStdout(), c.OutputDir).WriteReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
