// Package config defines the cost-forecast settings and loads them from an
// optional YAML file, the environment and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/cost-forecast/pkg/constants"
	"github.com/iwvelando/cost-forecast/pkg/validation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for cost-forecast.
type Configuration struct {
	Profile string        `mapstructure:"profile"`
	Region  string        `mapstructure:"region"`
	Type    string        `mapstructure:"type"`
	DryRun  bool          `mapstructure:"dryRun"`
	Minutes int           `mapstructure:"minutes"`
	Debug   bool          `mapstructure:"debug"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // mirrored log file, empty disables it
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"profile":  "profile",
	"region":   "region",
	"type":     "type",
	"d":        "dryRun",
	"minutes":  "minutes",
	"debug":    "debug",
	"log-file": "logging.outputFile",
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", "")
	v.SetDefault("type", "")
	v.SetDefault("dryRun", false)
	v.SetDefault("debug", false)
	v.SetDefault("region", constants.DefaultRegion)
	v.SetDefault("minutes", constants.DefaultMinutes)
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", constants.DefaultLogFile)
}

// LoadConfiguration merges defaults, the YAML file at configPath (skipped when
// empty), COST_FORECAST_* environment variables and any flags set in flags,
// in increasing order of precedence.
func LoadConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("unable to bind flag --%s: %w", name, err)
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if configuration.Debug {
		configuration.Logging.Level = "debug"
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	return validation.SettingsWarnings(c.Region, c.DryRun, c.Minutes)
}
