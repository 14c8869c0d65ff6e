package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/microcoso/microcoso/internal/content"
	"github.com/microcoso/microcoso/internal/theme"
)

// Sentinel errors for reading posts and writing pages.
var (
	ErrReadPost  = errors.New("failed to read post")
	ErrWritePage = errors.New("failed to write page")
)

// Output file names of the static site.
const (
	indexFile = "index.html"
	styleFile = "style.css"
)

// runBuild writes the whole site into the output directory.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
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
	if flags.output != "" {
		cfg.Build.OutputDir = flags.output
	}
	if flags.workers != 0 {
		cfg.Build.Workers = flags.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}
	th, err := newTheme(cfg, parser, theme.StaticURLs{}, env)
	if err != nil {
		return err
	}

	posts, err := newStore(cfg, parser).List(ctx)
	if err != nil {
		return err
	}

	outDir := cfg.Build.OutputDir
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %v", ErrWritePage, err)
	}

	workers := resolvePoolSize(cfg.Build.Workers)
	logger.Debug().Int("posts", len(posts)).Int("workers", workers).Str("output", outDir).Msg("building site")

	results := buildPages(ctx, workers, sitePages(th, posts, outDir))
	return reportResults(results, logger, outDir)
}

// sitePages lists the files of the site: the list page, the stylesheet and
// one page per post.
func sitePages(th *theme.Theme, posts []*content.Post, outDir string) []PageToBuild {
	urls := th.URLs()
	pages := make([]PageToBuild, 0, len(posts)+2)

	pages = append(pages,
		PageToBuild{
			OutputPath: filepath.Join(outDir, indexFile),
			Render: func(w io.Writer) error {
				return th.RenderIndex(w, posts)
			},
		},
		PageToBuild{
			OutputPath: filepath.Join(outDir, styleFile),
			Render: func(w io.Writer) error {
				_, err := io.WriteString(w, th.Stylesheet())
				return err
			},
		},
	)

	for _, p := range posts {
		pages = append(pages, PageToBuild{
			Source:     p.Path,
			OutputPath: filepath.Join(outDir, urls.Post(p.Slug)),
			Render: func(w io.Writer) error {
				return th.RenderPost(w, p)
			},
		})
	}
	return pages
}
