// Package config loads and validates the site configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcoso/microcoso/internal/dateutil"
	"github.com/microcoso/microcoso/internal/fileutil"
	"github.com/microcoso/microcoso/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength      = 200  // Site title
	MaxLanguageLength   = 35   // BCP 47 tag, "en", "it-IT"
	MaxFooterLength     = 2000 // Footer markdown
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxExtensionLength  = 16   // ".txt", ".post"
	MaxStyleNameLength  = 64   // Theme or chroma style name
	MaxAddrLength       = 256  // "host:port"
	MaxDateFormatLength = dateutil.MaxDateFormatLength
)

// MaxWorkers bounds build.workers.
const MaxWorkers = 64

// Defaults applied by DefaultConfig.
const (
	DefaultTitle          = "microcoso"
	DefaultLanguage       = "en"
	DefaultContentDir     = "content/"
	DefaultExtension      = ".txt"
	DefaultStyle          = "default"
	DefaultTemplates      = "default"
	DefaultHighlightStyle = "github"
	DefaultAddr           = ":8080"
	DefaultOutputDir      = "public/"
)

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "microcoso"

// Config holds the whole site configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
	Server  ServerConfig  `yaml:"server"`
	Build   BuildConfig   `yaml:"build"`
}

// SiteConfig defines site-wide presentation.
type SiteConfig struct {
	Title      string `yaml:"title"`
	Language   string `yaml:"language"`   // <html lang>
	Footer     string `yaml:"footer"`     // CommonMark, rendered without raw HTML
	DateFormat string `yaml:"dateFormat"` // Preset or tokens; empty = as written
}

// ContentConfig defines where posts live.
type ContentConfig struct {
	Dir            string `yaml:"dir"`
	Extension      string `yaml:"extension"`
	SkipBlankLines bool   `yaml:"skipBlankLines"`
}

// RenderConfig toggles optional parser stages.
type RenderConfig struct {
	EscapeSpans    bool   `yaml:"escapeSpans"`
	Sanitize       bool   `yaml:"sanitize"`
	Highlight      bool   `yaml:"highlight"`
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name
}

// AssetsConfig defines theme loading options.
type AssetsConfig struct {
	BasePath  string `yaml:"basePath"`  // Empty = use embedded theme
	Style     string `yaml:"style"`     // Stylesheet name without .css
	Templates string `yaml:"templates"` // Template set name
}

// ServerConfig defines the preview server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// BuildConfig defines static site generation.
type BuildConfig struct {
	OutputDir string `yaml:"outputDir"`
	Workers   int    `yaml:"workers"` // 0 = GOMAXPROCS
}

// Validate checks field lengths and value domains.
// Called automatically by LoadConfig, but available for callers who build a
// Config by hand.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.language", c.Site.Language, MaxLanguageLength},
		{"site.footer", c.Site.Footer, MaxFooterLength},
		{"site.dateFormat", c.Site.DateFormat, MaxDateFormatLength},
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"content.extension", c.Content.Extension, MaxExtensionLength},
		{"render.highlightStyle", c.Render.HighlightStyle, MaxStyleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.style", c.Assets.Style, MaxStyleNameLength},
		{"assets.templates", c.Assets.Templates, MaxStyleNameLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
		{"build.outputDir", c.Build.OutputDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Content.Extension != "" {
		if err := fileutil.ValidateExtension(c.Content.Extension); err != nil {
			return fmt.Errorf("%w: content.extension: %v", ErrInvalidValue, err)
		}
	}

	if c.Site.DateFormat != "" {
		if _, err := dateutil.ResolveFormat(c.Site.DateFormat); err != nil {
			return fmt.Errorf("%w: site.dateFormat: %v", ErrInvalidValue, err)
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
// Optional render stages are off.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:    DefaultTitle,
			Language: DefaultLanguage,
		},
		Content: ContentConfig{
			Dir:       DefaultContentDir,
			Extension: DefaultExtension,
		},
		Render: RenderConfig{HighlightStyle: DefaultHighlightStyle},
		Assets: AssetsConfig{Style: DefaultStyle, Templates: DefaultTemplates},
		Server: ServerConfig{Addr: DefaultAddr},
		Build:  BuildConfig{OutputDir: DefaultOutputDir},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig value. A missing file
// is an error (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal returns the configuration as YAML, in the layout LoadConfig reads.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Encode(c)
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/microcoso/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
