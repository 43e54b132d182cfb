// Package config loads the command's settings from flags, PLATFORMS_*
// environment variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/liznear/platforms-from-scratch/platform"
	"github.com/liznear/platforms-from-scratch/report"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrBadStrategy = errors.New("strategy must be bottom-up or recursive")

type Config struct {
	// Arrivals and Departures are space separated HH:MM times. When empty the
	// command prompts for them.
	Arrivals   string `mapstructure:"arrivals"`
	Departures string `mapstructure:"departures"`
	Verbose    bool   `mapstructure:"verbose"`
	Strategy   string `mapstructure:"strategy"`
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log-level"`
	LogFormat  string `mapstructure:"log-format"`

	// Resolved from Strategy and Color by Load.
	Merge     platform.Strategy `mapstructure:"-"`
	ColorMode report.ColorMode  `mapstructure:"-"`
}

// Load parses args and merges them with the environment and config file.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("platforms", pflag.ContinueOnError)
	fs.String("arrivals", "", "arrival times, space separated HH:MM")
	fs.String("departures", "", "departure times, space separated HH:MM")
	fs.Bool("verbose", true, "narrate every processed event and merge level, whatever the log level")
	fs.String("strategy", platform.BottomUp.String(), "divide and conquer merge: bottom-up or recursive")
	fs.String("color", "auto", "auto, always or never")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "console", "console or json")
	configFile := fs.String("config", "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: fail to parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PLATFORMS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: fail to bind flags: %w", err)
	}
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: fail to read %q: %w", *configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: fail to decode: %w", err)
	}

	var err error
	if cfg.Merge, err = parseStrategy(cfg.Strategy); err != nil {
		return nil, err
	}
	if cfg.ColorMode, err = report.ParseColorMode(cfg.Color); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func parseStrategy(s string) (platform.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", platform.BottomUp.String():
		return platform.BottomUp, nil
	case platform.Recursive.String():
		return platform.Recursive, nil
	default:
		return 0, fmt.Errorf("config: %w, got %q", ErrBadStrategy, s)
	}
}
