package config

// Config holds the oracle's settings, loaded from an optional yaml
// file and overridable by command-line flags.
type Config struct {
	// Flavor selects the regex engine. See engine.Names for the
	// supported values.
	Flavor string `yaml:"flavor"`

	// LogLevel sets the logrus level for stderr diagnostics.
	LogLevel string `yaml:"log_level"`
}
