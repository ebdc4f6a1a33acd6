package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment overrides, e.g. REVPLOT_LOG_LEVEL.
const envPrefix = "REVPLOT_"

// Config holds the runtime configuration of the CLI.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogJSON switches log output to JSON.
	LogJSON bool `koanf:"log_json"`
	// RepoRoot is the tracked repository the plots read from.
	RepoRoot string `koanf:"repo_root"`
	// TemplateDir is the templates directory, relative to RepoRoot.
	TemplateDir string `koanf:"template_dir"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		LogJSON:     false,
		RepoRoot:    ".",
		TemplateDir: filepath.Join(".revplot", "plot"),
	}
}

// Load builds the configuration from defaults overridden by REVPLOT_*
// environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}
