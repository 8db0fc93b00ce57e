package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration from path, or from DefaultFileName in the
// working directory when path is empty. A missing default file yields a
// config of pure defaults rather than an error, so commands that only need
// an explicit cluster argument still work without a file.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := withDefaults(&Config{})
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	withDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func withDefaults(cfg *Config) *Config {
	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = os.Getenv("K8SNOOZE_API_ENDPOINT")
	}
	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = "https://containers.example.com/v1"
	}
	if cfg.StateDir == "" {
		cfg.StateDir = defaultStateDir()
	}
	if n := parseInt("K8SNOOZE_WAKE_SIZE_PER_ZONE", 0); n > 0 {
		cfg.WakeSizePerZone = n
	}
	if cfg.WakeSizePerZone == 0 {
		cfg.WakeSizePerZone = 2
	}
	if cfg.Pricing.Endpoint == "" {
		cfg.Pricing.Endpoint = cfg.APIEndpoint
	}
	return cfg
}
