package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/flamingo-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or modify persistent settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "data_file: %s\n", c.DataFile)
		fmt.Fprintf(out, "output_dir: %s\n", c.OutputDir)
		fmt.Fprintf(out, "head_rows: %d\n", c.HeadRows)
		fmt.Fprintf(out, "chart_dpi: %d\n", c.ChartDPI)
		fmt.Fprintf(out, "chart_width: %g\n", c.ChartWidth)
		fmt.Fprintf(out, "chart_height: %g\n", c.ChartHeight)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key and save it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := activeConfig()
		switch key {
		case "data_file":
			c.DataFile = val
		case "output_dir":
			c.OutputDir = val
		case "head_rows":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("head_rows must be a positive integer, got %q", val)
			}
			c.HeadRows = n
		case "chart_dpi":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("chart_dpi must be a positive integer, got %q", val)
			}
			c.ChartDPI = n
		case "chart_width", "chart_height":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("%s must be a positive number, got %q", key, val)
			}
			if key == "chart_width" {
				c.ChartWidth = f
			} else {
				c.ChartHeight = f
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
