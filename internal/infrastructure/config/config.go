package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Demand   DemandConfig   `mapstructure:"demand"`
	Search   SearchConfig   `mapstructure:"search"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// DemandConfig tunes the demand estimator.
type DemandConfig struct {
	// MinSamples is the minimum observations before a fit is attempted
	// (2 is the hard floor, 3 recommended for stability).
	MinSamples int `mapstructure:"min_samples" validate:"gte=2"`
}

// SearchConfig tunes the strategy search driver.
type SearchConfig struct {
	ElasticityRate  float64 `mapstructure:"elasticity_rate" validate:"gte=0"`
	SpendReference  float64 `mapstructure:"spend_reference" validate:"gte=0"`
	CaptureStandard float64 `mapstructure:"capture_standard" validate:"gt=0,lte=1"`
	CapturePremium  float64 `mapstructure:"capture_premium" validate:"gt=0,lte=1"`
	MaxCandidates   int     `mapstructure:"max_candidates" validate:"gt=0"`
	Workers         int     `mapstructure:"workers" validate:"gt=0"`
	GridStepsBelow  int     `mapstructure:"grid_steps_below" validate:"gte=0"`
	GridStepsAbove  int     `mapstructure:"grid_steps_above" validate:"gte=0"`
	PremiumMarkup   float64 `mapstructure:"premium_markup" validate:"gte=0"`
}

// MetricsConfig controls the optional metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/intopia-planner")
	}

	v.SetEnvPrefix("IP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not found is OK - env vars and defaults cover it
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadConfigOrDefault loads configuration or returns a default config on error
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		defaultCfg := &Config{}
		SetDefaults(defaultCfg)
		return defaultCfg
	}
	return cfg
}

// MustLoadConfig loads configuration and panics on error (for use in main.go)
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
