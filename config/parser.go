package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

const envFileKey = "TESTING_ENV_FILE"

// Parse builds the configuration from a list of KEY=VALUE pairs, as returned by
// os.Environ. Empty values are treated as unset.
func Parse(environ []string) (*Config, error) {
	values := toMap(environ)

	if path := values[envFileKey]; path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("Unable to read env file %v: %w", path, err)
		}

		// The process environment wins over the file.
		for key, value := range fileValues {
			if _, ok := values[key]; !ok && value != "" {
				values[key] = value
			}
		}
	}

	cfg := defaults()
	if err := mapstructure.Decode(values, &cfg); err != nil {
		return nil, fmt.Errorf("Unable to decode configuration: %w", err)
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("Invalid TESTING_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	return &cfg, nil
}

// Level returns the zerolog level named by LogLevel. Parse has already
// validated it, so an unknown value falls back to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func toMap(environ []string) map[string]string {
	values := make(map[string]string, len(environ))

	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || value == "" {
			continue
		}
		values[key] = value
	}

	return values
}
