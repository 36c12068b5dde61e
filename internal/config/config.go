package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotcommander/querylint/internal/types"
	"github.com/spf13/viper"
)

// Output formats
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Fail-on levels
const (
	FailOnFail  = "fail"  // exit non-zero when any query does not pass
	FailOnNever = "never" // always exit zero
)

// ConfigFiles are the config file names looked up in the working directory, in order.
var ConfigFiles = []string{".querylintrc.json", ".querylintrc.yaml", ".querylintrc.yml"}

// DefaultPatterns find query-set files under the root.
var DefaultPatterns = []string{"**/*.queries.yaml", "**/*.queries.yml"}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Config represents the querylint configuration
type Config struct {
	Root        string   `mapstructure:"root" json:"root"`
	Mode        string   `mapstructure:"mode" json:"mode"`
	Patterns    []string `mapstructure:"patterns" json:"patterns"`
	Exclude     []string `mapstructure:"exclude" json:"exclude"`
	Format      string   `mapstructure:"format" json:"format"`
	Output      string   `mapstructure:"output" json:"output"`
	FailOn      string   `mapstructure:"failOn" json:"failOn"`
	Quiet       bool     `mapstructure:"quiet" json:"quiet"`
	Verbose     bool     `mapstructure:"verbose" json:"verbose"`
	LogLevel    string   `mapstructure:"logLevel" json:"logLevel"`
	Concurrency int      `mapstructure:"concurrency" json:"concurrency"`
}

// DefaultMode returns the configured mode. LoadConfig has already validated it.
func (c *Config) DefaultMode() types.Mode {
	m, err := types.ParseMode(c.Mode)
	if err != nil {
		return types.ModeIntent
	}
	return m
}

// LoadConfig loads configuration from defaults, config files and environment
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("mode", string(types.ModeIntent))
	viper.SetDefault("patterns", DefaultPatterns)
	viper.SetDefault("exclude", []string{})
	viper.SetDefault("format", FormatConsole)
	viper.SetDefault("failOn", FailOnFail)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("logLevel", "warn")
	viper.SetDefault("concurrency", 8)

	for _, path := range ConfigFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("QUERYLINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != FormatConsole && config.Format != FormatJSON && config.Format != FormatMarkdown {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.FailOn != FailOnFail && config.FailOn != FailOnNever {
		return fmt.Errorf("invalid fail-on level: %s. Must be 'fail' or 'never'", config.FailOn)
	}

	if _, err := types.ParseMode(config.Mode); err != nil {
		return err
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	if !validLogLevel(config.LogLevel) {
		return fmt.Errorf("invalid log level: %s. Must be one of %s", config.LogLevel, strings.Join(logLevels, ", "))
	}

	if len(config.Patterns) == 0 {
		return fmt.Errorf("at least one query file pattern is required")
	}

	return nil
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// SaveConfig saves the configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
