package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/microcoso/microcoso/internal/config"
)

// envPrefix starts every environment variable the CLI reads.
const envPrefix = "MICROCOSO_"

// envConfig holds configuration from environment variables.
// Provides deployment-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MICROCOSO_CONFIG: config file name or path
	ContentDir string // MICROCOSO_CONTENT_DIR: content directory
	OutputDir  string // MICROCOSO_OUTPUT_DIR: build output directory
	Addr       string // MICROCOSO_ADDR: listen address
	Style      string // MICROCOSO_STYLE: stylesheet name
	Workers    int    // MICROCOSO_WORKERS: build workers
}

// knownEnvVars lists valid MICROCOSO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MICROCOSO_CONFIG":      true,
	"MICROCOSO_CONTENT_DIR": true,
	"MICROCOSO_OUTPUT_DIR":  true,
	"MICROCOSO_ADDR":        true,
	"MICROCOSO_STYLE":       true,
	"MICROCOSO_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable or non-positive MICROCOSO_WORKERS is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MICROCOSO_CONFIG"),
		ContentDir: getenv("MICROCOSO_CONTENT_DIR"),
		OutputDir:  getenv("MICROCOSO_OUTPUT_DIR"),
		Addr:       getenv("MICROCOSO_ADDR"),
		Style:      getenv("MICROCOSO_STYLE"),
	}

	if workers := getenv("MICROCOSO_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MICROCOSO_* variables.
// Helps catch typos like MICROCOSO_ADRR.
func warnUnknownEnvVars(logger zerolog.Logger, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overwrites config values with the environment variables
// that are set. Flags are merged afterwards, which gives:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Build.OutputDir = env.OutputDir
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if env.Style != "" {
		cfg.Assets.Style = env.Style
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
