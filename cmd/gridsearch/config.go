package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GRIDSEARCH"

// settings is the resolved configuration for one invocation.
// Precedence: flag, then environment, then config file, then default.
type settings struct {
	Config   string `mapstructure:"config"`
	LogLevel string `mapstructure:"log-level"`
	Diagonal bool   `mapstructure:"diagonal"`
	MaxDepth int    `mapstructure:"max-depth"`
	ShowPath bool   `mapstructure:"show-path"`
	Dijkstra bool   `mapstructure:"dijkstra"`
	Settled  bool   `mapstructure:"settled"`
}

// loadSettings binds flags to a fresh viper instance, layers the
// environment and an optional YAML file under them, and decodes the result.
func loadSettings(flags *pflag.FlagSet) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if s.MaxDepth < 0 {
		return nil, fmt.Errorf("max-depth must be >= 0, got %d", s.MaxDepth)
	}

	return &s, nil
}
