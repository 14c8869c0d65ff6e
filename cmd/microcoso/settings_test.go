package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/microcoso/microcoso"
	"github.com/microcoso/microcoso/internal/assets"
	"github.com/microcoso/microcoso/internal/config"
	"github.com/microcoso/microcoso/internal/theme"
)

// ---------------------------------------------------------------------------
// TestLoadSettings - Config file, environment and defaults
// ---------------------------------------------------------------------------

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("defaults without config", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		cfg, _, err := loadSettings(commonFlags{}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Content.Dir != config.DefaultContentDir {
			t.Errorf("Content.Dir = %q, want %q", cfg.Content.Dir, config.DefaultContentDir)
		}
	})

	t.Run("config flag", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		writeFile(t, path, "site:\n  title: Notebook\nserver:\n  addr: \":9000\"\n")

		env, _, _ := testEnv(nil)
		cfg, _, err := loadSettings(commonFlags{config: path}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Site.Title != "Notebook" {
			t.Errorf("Site.Title = %q, want Notebook", cfg.Site.Title)
		}
		if cfg.Server.Addr != ":9000" {
			t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
		}
	})

	t.Run("config from environment, env overrides file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		writeFile(t, path, "server:\n  addr: \":9000\"\n")

		env, _, _ := testEnv(map[string]string{
			"MICROCOSO_CONFIG": path,
			"MICROCOSO_ADDR":   ":7000",
		})
		cfg, _, err := loadSettings(commonFlags{}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Server.Addr != ":7000" {
			t.Errorf("Server.Addr = %q, want :7000", cfg.Server.Addr)
		}
	})

	t.Run("missing config", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		_, _, err := loadSettings(commonFlags{config: filepath.Join(t.TempDir(), "none.yaml")}, env)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown env var warns", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv(map[string]string{"MICROCOSO_STYEL": "x"})
		if _, _, err := loadSettings(commonFlags{}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr.String(), "MICROCOSO_STYEL") {
			t.Errorf("stderr = %q, want a warning naming MICROCOSO_STYEL", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Flags over config values
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Render.Sanitize = true

	mergeParserFlags(parserFlags{highlight: true, highlightStyle: "monokai"}, cfg)
	mergeThemeFlags(themeFlags{style: "minimal"}, cfg)

	if !cfg.Render.Sanitize {
		t.Error("unset boolean flag turned sanitize off")
	}
	if !cfg.Render.Highlight || cfg.Render.HighlightStyle != "monokai" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Assets.Style != "minimal" {
		t.Errorf("Assets.Style = %q, want minimal", cfg.Assets.Style)
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
}

// ---------------------------------------------------------------------------
// TestApplyContentDir - Positional directory argument
// ---------------------------------------------------------------------------

func TestApplyContentDir(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	if err := applyContentDir(nil, cfg); err != nil || cfg.Content.Dir != config.DefaultContentDir {
		t.Errorf("no args: dir = %q, err = %v", cfg.Content.Dir, err)
	}
	if err := applyContentDir([]string{"posts"}, cfg); err != nil || cfg.Content.Dir != "posts" {
		t.Errorf("one arg: dir = %q, err = %v", cfg.Content.Dir, err)
	}
	if err := applyContentDir([]string{"a", "b"}, cfg); !errors.Is(err, ErrInvalidFlags) {
		t.Errorf("two args: error = %v, want ErrInvalidFlags", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewParser - Render settings to parser options
// ---------------------------------------------------------------------------

func TestNewParser(t *testing.T) {
	t.Parallel()

	t.Run("escape spans", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.EscapeSpans = true
		parser, err := newParser(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		doc := parser.Parse("[link: <b>bold</b> | /u ]")
		if strings.Contains(doc.Body, "<b>") {
			t.Errorf("Body = %q, want escaped link text", doc.Body)
		}
	})

	t.Run("unknown highlight style", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.Highlight = true
		cfg.Render.HighlightStyle = "no-such-style"
		_, err := newParser(cfg)
		if !errors.Is(err, microcoso.ErrUnknownStyle) {
			t.Errorf("error = %v, want ErrUnknownStyle", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestNewTheme - Asset loading
// ---------------------------------------------------------------------------

func TestNewTheme(t *testing.T) {
	t.Parallel()

	t.Run("embedded theme with highlight CSS", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.Highlight = true
		parser, err := newParser(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		env, _, _ := testEnv(nil)
		th, err := newTheme(cfg, parser, theme.StaticURLs{}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(th.Stylesheet(), ".chroma") {
			t.Error("stylesheet has no highlight rules")
		}
	})

	t.Run("minimal stylesheet with default templates", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Assets.Style = "minimal"

		env, _, _ := testEnv(nil)
		if _, err := newTheme(cfg, nil, theme.QueryURLs{}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown template set", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Assets.Templates = "missing"

		env, _, _ := testEnv(nil)
		_, err := newTheme(cfg, nil, theme.QueryURLs{}, env)
		if !errors.Is(err, assets.ErrTemplateSetNotFound) {
			t.Errorf("error = %v, want ErrTemplateSetNotFound", err)
		}
	})

	t.Run("invalid asset path", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Assets.BasePath = filepath.Join(t.TempDir(), "missing")

		env, _, _ := testEnv(nil)
		_, err := newTheme(cfg, nil, theme.QueryURLs{}, env)
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}
