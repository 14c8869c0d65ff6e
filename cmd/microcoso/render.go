package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/microcoso/microcoso/internal/content"
	"github.com/microcoso/microcoso/internal/theme"
)

// runRender prints the HTML of one post file: the body by default, the
// whole themed page with --page.
func runRender(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) != 1 {
		printRenderUsage(env.Stderr)
		return fmt.Errorf("%w: render takes exactly one file", ErrMissingArgument)
	}

	cfg, logger, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	mergeParserFlags(flags.parser, cfg)
	mergeThemeFlags(flags.theme, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	post, err := content.ReadPost(positional[0], parser, cfg.Content.SkipBlankLines)
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrReadPost, err)
	}
	logger.Debug().Str("file", positional[0]).Str("slug", post.Slug).Msg("post parsed")

	if !flags.page {
		_, err := fmt.Fprintln(env.Stdout, post.Body)
		return err
	}

	th, err := newTheme(cfg, parser, theme.StaticURLs{}, env)
	if err != nil {
		return err
	}
	return th.RenderPost(env.Stdout, post)
}

// flagError marks a flag parsing failure as a usage error. Help requests
// pass through unchanged.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}
