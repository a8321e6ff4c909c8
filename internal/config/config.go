// Package config loads the analyzer settings from the environment and an
// optional JSON or YAML file.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/analysis"
)

// EnvPrefix is prepended to every environment key, e.g. RIDE_RIDER_WEIGHT_KG.
const EnvPrefix = "RIDE"

type Config struct {
	RiderWeightKg    float64 `mapstructure:"RIDER_WEIGHT_KG"`
	MaxHeartRate     float64 `mapstructure:"MAX_HEART_RATE"`
	ProfileMaxPoints int     `mapstructure:"PROFILE_MAX_POINTS"`
	Workers          int     `mapstructure:"WORKERS"`
	Quiet            bool    `mapstructure:"QUIET"`
}

// Load reads the configuration from the environment only.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile reads path, when not empty, and lets the environment override
// it. Keys in the file use the same names as the environment without the
// prefix.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := analysis.DefaultOptions()
	v.SetDefault("RIDER_WEIGHT_KG", def.RiderWeightKg)
	v.SetDefault("MAX_HEART_RATE", def.MaxHeartRate)
	v.SetDefault("PROFILE_MAX_POINTS", def.ProfileMaxPoints)
	v.SetDefault("WORKERS", runtime.NumCPU())
	v.SetDefault("QUIET", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.RiderWeightKg <= 0 {
		return fmt.Errorf("rider_weight_kg must be positive, got %f", c.RiderWeightKg)
	}
	if c.MaxHeartRate <= 0 {
		return fmt.Errorf("max_heart_rate must be positive, got %f", c.MaxHeartRate)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// AnalyzerOptions maps the configuration onto analysis.Options.
func (c *Config) AnalyzerOptions() analysis.Options {
	return analysis.Options{
		RiderWeightKg:    c.RiderWeightKg,
		MaxHeartRate:     c.MaxHeartRate,
		ProfileMaxPoints: c.ProfileMaxPoints,
	}
}
