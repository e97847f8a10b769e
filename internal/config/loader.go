package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rxprobe/rxprobe/internal/engine"
	"github.com/rxprobe/rxprobe/internal/logging"
)

// FileName is the config file looked up in the working directory when
// no explicit path is given.
const FileName = ".rxprobe.yaml"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Flavor:   engine.DefaultFlavor,
		LogLevel: logging.DefaultLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses the config file at path. An empty path means
// FileName in the working directory, and in that case a missing file
// yields the default config; an explicit path must exist. Fields
// absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every field holds a usable value.
func Validate(cfg *Config) error {
	if _, err := engine.Lookup(cfg.Flavor); err != nil {
		return ValidationError{Field: "flavor", Message: err.Error()}
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)}
	}
	return nil
}
