// Package logging configures the process-wide logrus logger. Protocol
// verdicts go to stdout; everything logged here goes to stderr so the
// two streams never mix on a pipe.
package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when neither config nor flags pick a level.
// Warn keeps stderr quiet while a harness drives the oracle.
const DefaultLevel = "warn"

// Init configures the global logger with the given level name. An
// empty level means DefaultLevel.
func Init(level string) error {
	if level == "" {
		level = DefaultLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// WithComponent returns an entry tagged with the originating component.
func WithComponent(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
