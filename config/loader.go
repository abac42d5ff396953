package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MAPKIT"

// Load reads configuration from the given file plus the environment. An
// empty path loads from the environment alone (plus a .env file when one
// exists in the working directory).
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnvKeys registers the keys AutomaticEnv should resolve even when the
// config file does not mention them.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"api_key",
		"endpoints.maps",
		"endpoints.roads",
		"logging.level",
		"logging.format",
		"logging.output",
		"retry.max_attempts",
		"retry.max_elapsed_time",
		"retry.initial_backoff",
		"retry.max_backoff",
		"retry.backoff_factor",
		"retry.jitter",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}
