package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "AOC_"
	configEnvVar = "AOC_CONFIG"
)

// Loader loads configuration from defaults, a YAML file and the environment.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
	source      string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader creates a Loader that looks for aoc.yaml in the working
// directory unless WithConfigPaths says otherwise.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"aoc.yaml", "config/aoc.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithConfigPaths sets the candidate config files, first existing wins.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load merges, in increasing priority:
//  1. defaults
//  2. the first config file found (optional)
//  3. environment variables
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("config: load file: %w", err)
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Source is the config file Load read, or "" when none was found.
func (l *Loader) Source() string { return l.source }

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"input_dir":      "inputs",
		"log.level":      "info",
		"log.timestamps": true,
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

// loadConfigFile reads $AOC_CONFIG if set, else the first existing
// configPaths entry. No file at all is not an error.
func (l *Loader) loadConfigFile() error {
	paths := l.configPaths
	if p := os.Getenv(configEnvVar); p != "" {
		paths = []string{p}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		l.source = path
		return nil
	}

	return nil
}

// envKeyMappings maps env suffixes whose key contains an underscore.
var envKeyMappings = map[string]string{
	"input_dir":      "input_dir",
	"log_level":      "log.level",
	"log_timestamps": "log.timestamps",
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if mapped, ok := envKeyMappings[key]; ok {
			return mapped, value
		}
		if key == "config" {
			return "", nil
		}

		return strings.ReplaceAll(key, "_", "."), value
	}), nil)
}
