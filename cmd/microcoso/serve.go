package main

import (
	"context"

	"github.com/microcoso/microcoso/internal/server"
	"github.com/microcoso/microcoso/internal/theme"
)

// runServe serves the site until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	cfg, logger, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	if err := applyContentDir(positional, cfg); err != nil {
		return err
	}
	mergeParserFlags(flags.parser, cfg)
	mergeThemeFlags(flags.theme, cfg)
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}
	th, err := newTheme(cfg, parser, theme.QueryURLs{}, env)
	if err != nil {
		return err
	}

	store := newStore(cfg, parser)
	if err := store.Check(); err != nil {
		return err
	}

	logger.Info().Str("dir", cfg.Content.Dir).Str("templates", cfg.Assets.Templates).Str("style", cfg.Assets.Style).Msg("content directory")

	srv := server.New(store, th, logger)
	return server.ListenAndServe(ctx, cfg.Server.Addr, srv.Handler(), logger)
}
