package cmd

import (
	"fmt"
	"os"
	"strconv"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

const (
	DefaultHTTPPort = "8080"
	DefaultLogLevel = "info"
	DefaultAppEnv   = "production"
)

type Config struct {
	HTTPPort      string
	LogLevel      string
	AppEnv        string
	StartupDelay  kernel.Minutes
	TransportTime kernel.Minutes
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		HTTPPort:      DefaultHTTPPort,
		LogLevel:      DefaultLogLevel,
		AppEnv:        DefaultAppEnv,
		StartupDelay:  services.DefaultStartupDelay,
		TransportTime: services.DefaultTransportTime,
	}
}

// ConfigFromEnv reads the configuration from the process environment.
func ConfigFromEnv() (Config, error) {
	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup reads the configuration through lookup, falling back to
// DefaultConfig for unset or empty variables. Malformed minutes fail.
func ConfigFromLookup(lookup func(string) (string, bool)) (Config, error) {
	config := DefaultConfig()

	get := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	minutes := func(key string, fallback kernel.Minutes) (kernel.Minutes, error) {
		value, ok := lookup(key)
		if !ok || value == "" {
			return fallback, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
		}
		m, err := kernel.NewMinutes(n)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return m, nil
	}

	config.HTTPPort = get("HTTP_PORT", config.HTTPPort)
	config.LogLevel = get("LOG_LEVEL", config.LogLevel)
	config.AppEnv = get("APP_ENV", config.AppEnv)

	var err error
	if config.StartupDelay, err = minutes("STARTUP_DELAY_MINUTES", config.StartupDelay); err != nil {
		return Config{}, err
	}
	if config.TransportTime, err = minutes("TRANSPORT_TIME_MINUTES", config.TransportTime); err != nil {
		return Config{}, err
	}

	return config, nil
}
