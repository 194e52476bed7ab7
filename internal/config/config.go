// Package config loads runner settings with koanf: built-in defaults, then an
// optional YAML file, then AOC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the runner configuration.
type Config struct {
	// InputDir holds puzzle inputs as <year>/day<DD>.txt.
	InputDir string    `koanf:"input_dir"`
	Log      LogConfig `koanf:"log"`
}

// LogConfig configures the runner's logger.
type LogConfig struct {
	Level      string `koanf:"level"` // debug, info, warn, error
	Timestamps bool   `koanf:"timestamps"`
}

var levels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks required fields and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.InputDir) == "" {
		errs = append(errs, fmt.Errorf("%w: input_dir is empty", ErrInvalid))
	}
	if !levels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("%w: log.level %q (want debug, info, warn or error)", ErrInvalid, c.Log.Level))
	}

	return errors.Join(errs...)
}
