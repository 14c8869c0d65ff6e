package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/microcoso/microcoso"
	"github.com/microcoso/microcoso/internal/assets"
	"github.com/microcoso/microcoso/internal/config"
	"github.com/microcoso/microcoso/internal/content"
	"github.com/microcoso/microcoso/internal/theme"
)

// loadSettings builds the logger and the effective configuration: the
// config file named by --config or MICROCOSO_CONFIG (defaults when neither
// is set), then environment overrides. Callers merge their flags on top and
// call Validate.
func loadSettings(common commonFlags, env *Environment) (*config.Config, zerolog.Logger, error) {
	logger := newLogger(env.Stderr, common, env.NoColor)

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	configName := common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return nil, logger, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug().Str("config", configName).Msg("config loaded")
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, logger, nil
}

// mergeParserFlags applies parser flags over config values.
// Boolean flags only switch stages on.
func mergeParserFlags(f parserFlags, cfg *config.Config) {
	if f.escapeSpans {
		cfg.Render.EscapeSpans = true
	}
	if f.sanitize {
		cfg.Render.Sanitize = true
	}
	if f.highlight {
		cfg.Render.Highlight = true
	}
	if f.highlightStyle != "" {
		cfg.Render.HighlightStyle = f.highlightStyle
	}
}

// mergeThemeFlags applies theme flags over config values.
func mergeThemeFlags(f themeFlags, cfg *config.Config) {
	if f.style != "" {
		cfg.Assets.Style = f.style
	}
	if f.templates != "" {
		cfg.Assets.Templates = f.templates
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
}

// applyContentDir sets the content directory from the optional positional
// argument. More than one argument is a usage error.
func applyContentDir(args []string, cfg *config.Config) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.Content.Dir = args[0]
		return nil
	default:
		return fmt.Errorf("%w: expected at most one content directory, got %d arguments", ErrInvalidFlags, len(args))
	}
}

// newParser builds the parser selected by the render settings.
func newParser(cfg *config.Config) (*microcoso.Parser, error) {
	var opts []microcoso.Option
	if cfg.Render.EscapeSpans {
		opts = append(opts, microcoso.WithEscapedSpans())
	}
	if cfg.Render.Sanitize {
		opts = append(opts, microcoso.WithSanitizer())
	}
	if cfg.Render.Highlight {
		opts = append(opts, microcoso.WithHighlighting(cfg.Render.HighlightStyle))
	}
	return microcoso.NewParser(opts...)
}

// newStore opens the configured content directory.
func newStore(cfg *config.Config, parser *microcoso.Parser) *content.Store {
	return content.NewStore(cfg.Content.Dir, parser,
		content.WithExtension(cfg.Content.Extension),
		content.WithSkipBlankLines(cfg.Content.SkipBlankLines),
		content.WithWorkers(cfg.Build.Workers),
	)
}

// newTheme loads the configured theme. A custom asset path layers over the
// embedded theme; otherwise env.AssetLoader is used.
func newTheme(cfg *config.Config, parser *microcoso.Parser, urls theme.URLScheme, env *Environment) (*theme.Theme, error) {
	var loader assets.AssetLoader = env.AssetLoader
	if cfg.Assets.BasePath != "" || loader == nil {
		resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
		if err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		loader = resolver
	}

	opts := []theme.Option{
		theme.WithSite(cfg.Site.Title, cfg.Site.Language),
		theme.WithFooter(cfg.Site.Footer),
		theme.WithDateFormat(cfg.Site.DateFormat),
		theme.WithURLs(urls),
		theme.WithContentHint(cfg.Content.Dir, cfg.Content.Extension),
		theme.WithClock(env.Now),
	}
	if cfg.Render.Highlight {
		opts = append(opts, theme.WithHighlightCSS(parser))
	}

	th, err := theme.Load(loader, cfg.Assets.Templates, cfg.Assets.Style, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	return th, nil
}
