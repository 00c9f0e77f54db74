package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Print the exploratory overview of the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		t, err := loadTable(cmd.OutOrStdout(), c.DataFile)
		if err != nil {
			return err
		}
		analysis.Explore(t, c.HeadRows).Render(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
