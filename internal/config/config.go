// Package config loads the application configuration from the config file,
// environment variables and defaults.
package config

import (
	"fmt"
	"time"

	"github.com/whirl-cli/whirl/internal/spinner"
)

// UIMode selects the renderer family.
type UIMode string

const (
	// UIFancy uses the Bubble Tea renderer on interactive terminals.
	UIFancy UIMode = "fancy"

	// UIPlain always uses the carriage-return line renderer.
	UIPlain UIMode = "plain"
)

// Config is the validated application configuration.
type Config struct {
	// Spinner is the default spinner name.
	Spinner string

	// Interval overrides the per-definition frame period when positive.
	Interval time.Duration

	// Matching is the key matching mode for definition files.
	Matching spinner.MatchMode

	// UI selects the renderer family.
	UI UIMode

	// NoColor disables colored output.
	NoColor bool

	// SpinnersFile is an optional definitions file merged over the
	// built-ins at startup.
	SpinnersFile string

	// Debug lowers the log level to debug.
	Debug bool

	// LogFormat is "text" or "json".
	LogFormat string

	// Quiet suppresses log output to the console.
	Quiet bool

	// ConfigFileUsed is the resolved path of the loaded config file, empty
	// when defaults were used.
	ConfigFileUsed string

	// Warnings collected while loading, reported once at startup.
	Warnings []string
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.Spinner == "" {
		return fmt.Errorf("default spinner name must not be empty")
	}
	switch c.UI {
	case UIFancy, UIPlain:
	default:
		return fmt.Errorf("invalid ui mode: %q (want fancy or plain)", c.UI)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q (want text or json)", c.LogFormat)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	return nil
}
