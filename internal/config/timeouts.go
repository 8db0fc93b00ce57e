package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Drain        time.Duration // Max wait for workers to drain after hibernation
	Scale        time.Duration // Max wait for workers to come ready after wake
	PollInterval time.Duration // Delay between convergence observations
	HTTP         time.Duration // Per-request timeout for control-plane calls
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - K8SNOOZE_TIMEOUT_DRAIN (default: 30m)
//   - K8SNOOZE_TIMEOUT_SCALE (default: 45m)
//   - K8SNOOZE_POLL_INTERVAL (default: 15s)
//   - K8SNOOZE_TIMEOUT_HTTP (default: 30s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Drain:        parseDuration("K8SNOOZE_TIMEOUT_DRAIN", 30*time.Minute),
		Scale:        parseDuration("K8SNOOZE_TIMEOUT_SCALE", 45*time.Minute),
		PollInterval: parseDuration("K8SNOOZE_POLL_INTERVAL", 15*time.Second),
		HTTP:         parseDuration("K8SNOOZE_TIMEOUT_HTTP", 30*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
