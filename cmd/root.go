package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/flamingo-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile  string
	dataFile string
	outDir   string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "flamingo",
	Short: "Flamingo CLI: population analytics over flamingo survey data",
	Long:  `Flamingo is a CLI tool that analyzes flamingo population survey data: growth rates, geographic and conservation breakdowns, normality testing, charts, and a summary report.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.flamingo/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data", "d", "", "survey CSV path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data") && dataFile != "" {
		cfg.DataFile = dataFile
	}
	if f.Changed("out") && outDir != "" {
		cfg.OutputDir = outDir
	}
}

// activeConfig reloads the configuration so the current flag values always
// win, falling back to defaults when the load itself fails.
func activeConfig() *cfgpkg.Global {
	loadConfig()
	if cfg == nil {
		cfg = cfgpkg.Defaults()
	}
	return cfg
}
