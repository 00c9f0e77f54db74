package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global holds tool-wide settings resolved from flags, env, and config file.
type Global struct {
	DataFile    string  `mapstructure:"data_file" yaml:"data_file"`
	OutputDir   string  `mapstructure:"output_dir" yaml:"output_dir"`
	HeadRows    int     `mapstructure:"head_rows" yaml:"head_rows"`
	ChartDPI    int     `mapstructure:"chart_dpi" yaml:"chart_dpi"`
	ChartWidth  float64 `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight float64 `mapstructure:"chart_height" yaml:"chart_height"`
}

// Defaults returns the built-in configuration.
func Defaults() *Global {
	return &Global{
		DataFile:    filepath.Join("data", "flamingo_data.csv"),
		OutputDir:   "outputs",
		HeadRows:    5,
		ChartDPI:    300,
		ChartWidth:  12,
		ChartHeight: 6,
	}
}

// Load reads configuration with precedence: env > config file > defaults.
// A project-local .env file may supply FLAMINGO_* variables.
func Load(cfgFile string) (*Global, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FLAMINGO")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("head_rows", d.HeadRows)
	v.SetDefault("chart_dpi", d.ChartDPI)
	v.SetDefault("chart_width", d.ChartWidth)
	v.SetDefault("chart_height", d.ChartHeight)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".flamingo")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create config dir: %w", err)
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing config file is fine; defaults apply.
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration as YAML. When cfgFile is empty it writes to
// ~/.flamingo/config.yaml.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".flamingo")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
