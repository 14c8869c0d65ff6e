package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/microcoso/microcoso"
	"github.com/microcoso/microcoso/internal/dateutil"
)

// noDate is printed in place of the date of a post without a date header.
const noDate = "-"

// runList prints one "date slug title" line per post, newest first.
func runList(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseListFlags(args, env.Stderr)
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
	if err := cfg.Validate(); err != nil {
		return err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	posts, err := newStore(cfg, parser).List(ctx)
	if err != nil {
		return err
	}
	logger.Debug().Str("dir", cfg.Content.Dir).Int("posts", len(posts)).Msg("content listed")

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range posts {
		date := noDate
		if p.Date != microcoso.DefaultDate {
			date = dateutil.FormatDate(p.Date, cfg.Site.DateFormat)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", date, p.Slug, p.Title)
	}
	return tw.Flush()
}
