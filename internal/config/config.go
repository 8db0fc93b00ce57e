// Package config defines the configuration structure and methods for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the config file auto-detected in the working directory.
const DefaultFileName = "k8snooze.yaml"

// Config holds the application configuration.
type Config struct {
	// ClusterName is the cluster targeted when a command omits one.
	ClusterName string `mapstructure:"cluster_name" yaml:"cluster_name"`

	// APIEndpoint is the control-plane API base URL.
	APIEndpoint string `mapstructure:"api_endpoint" yaml:"api_endpoint"`

	// APIToken authenticates against the control plane. Usually left
	// empty here and supplied via K8SNOOZE_API_TOKEN instead.
	APIToken string `mapstructure:"api_token" yaml:"api_token"`

	// StateDir is where per-cluster hibernation record files live.
	// Default: ~/.k8snooze
	StateDir string `mapstructure:"state_dir" yaml:"state_dir"`

	// WakeSizePerZone is the fallback per-zone size used when a wake has
	// no usable record for a pool and the caller supplies nothing.
	// Default: 2
	WakeSizePerZone int `mapstructure:"wake_size_per_zone" yaml:"wake_size_per_zone"`

	// Pricing configures the cost command.
	Pricing PricingConfig `mapstructure:"pricing" yaml:"pricing"`
}

// PricingConfig configures where worker pricing is fetched from.
type PricingConfig struct {
	// Endpoint overrides the pricing API base URL. Defaults to the
	// control-plane endpoint.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// Token returns the API token, preferring the environment over the file so
// tokens stay out of checked-in configs.
func (c *Config) Token() string {
	if env := os.Getenv("K8SNOOZE_API_TOKEN"); env != "" {
		return env
	}
	return c.APIToken
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.APIEndpoint == "" {
		return fmt.Errorf("api_endpoint is required")
	}
	if c.WakeSizePerZone < 1 {
		return fmt.Errorf("wake_size_per_zone must be at least 1, got %d", c.WakeSizePerZone)
	}
	return nil
}

// defaultStateDir places record files under the user's home directory,
// falling back to the working directory when home cannot be resolved.
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".k8snooze"
	}
	return filepath.Join(home, ".k8snooze")
}
