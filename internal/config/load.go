package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load.
// A key like server.port maps to PARLO_SERVER_PORT.
const envPrefix = "PARLO"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files, and
// config files take precedence over the built-in defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Configure to read from an optional config file in the working
	// directory or the system config directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/parlo/")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine: defaults and environment variables
		// cover everything. Any other read error is reported.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind environment variables for keys that have no default,
	// so AutomaticEnv picks them up during Unmarshal
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"database.url", "PARLO_DATABASE_URL"},
		{"catalog.path", "PARLO_CATALOG_PATH"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the built-in default for every configuration key
// that has one. Registering the key also makes it visible to AutomaticEnv,
// so every default can be overridden through the environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("practice.alternative_score", 95)
	v.SetDefault("practice.contains_floor", 85)
	v.SetDefault("practice.contained_floor", 70)
	v.SetDefault("practice.min_contained_length", 2)
	v.SetDefault("practice.good_threshold", 80)
	v.SetDefault("practice.close_threshold", 60)
	v.SetDefault("practice.try_again_threshold", 40)
	v.SetDefault("practice.phonetic_threshold", 0.85)

	v.SetDefault("review.interval_days", []int{0, 1, 3, 7, 14, 30})
	v.SetDefault("review.pass_rating", 3)
}
