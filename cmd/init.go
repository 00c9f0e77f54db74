package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

var initForce bool

// sampleCSV is a small but realistic survey extract so a fresh workspace can
// run the full pipeline immediately.
const sampleCSV = `species,region,country,habitat_type,conservation_status,population_2020,population_2023
Greater Flamingo,Africa,Kenya,Alkaline Lake,Least Concern,45000,52000
Greater Flamingo,Europe,Spain,Coastal Lagoon,Least Concern,61000,64500
Greater Flamingo,Asia,India,Salt Pan,Least Concern,39000,41200
Lesser Flamingo,Africa,Tanzania,Soda Lake,Near Threatened,830000,795000
Lesser Flamingo,Africa,Kenya,Soda Lake,Near Threatened,620000,604000
Lesser Flamingo,Asia,India,Salt Pan,Near Threatened,390000,402000
Chilean Flamingo,South America,Chile,Salt Flat,Near Threatened,200000,191000
Chilean Flamingo,South America,Argentina,Highland Lake,Near Threatened,95000,97500
Andean Flamingo,South America,Bolivia,Salt Flat,Vulnerable,38000,34500
James's Flamingo,South America,Bolivia,Highland Lake,Near Threatened,106000,102000
American Flamingo,Caribbean,Bahamas,Coastal Lagoon,Least Concern,80000,86000
American Flamingo,Caribbean,Cuba,,Least Concern,65000,68200
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a workspace with a sample survey dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		path := c.DataFile
		// Refuse to overwrite an existing dataset.
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("dataset already exists at %s (use --force to replace it)", path)
		} else if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("stat dataset: %w", err)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := utils.EnsureDir(dir); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
		}
		if err := utils.SafeWriteFile(path, []byte(sampleCSV)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Sample dataset written: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing dataset")
}
