// Package config loads runtime configuration for the calendar CLI:
// environment variables for paths, and YAML declaration files for the
// periods an author wants registered.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the CLI's environment configuration.
type Env struct {
	// DBPath is the SQLite database holding calendar state.
	DBPath string `env:"CALENDAR_DB" envDefault:".calendar/calendar.db"`

	// Hooks is an optional Lua hook script run on period firings.
	Hooks string `env:"CALENDAR_HOOKS"`

	// Periods is an optional YAML declaration file loaded by init.
	Periods string `env:"CALENDAR_PERIODS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
