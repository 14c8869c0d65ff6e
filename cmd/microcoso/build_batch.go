package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/microcoso/microcoso/internal/config"
	"github.com/microcoso/microcoso/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PageToBuild is one output file and the function that renders it.
type PageToBuild struct {
	Source     string // post file, empty for site-wide files
	OutputPath string
	Render     func(w io.Writer) error
}

// PageResult holds the outcome of writing a single page.
type PageResult struct {
	OutputPath string
	Err        error
	Duration   time.Duration
}

// buildPages renders and writes pages with a pool of workers.
// Pages not started when ctx is canceled fail with ctx.Err().
func buildPages(ctx context.Context, workers int, pages []PageToBuild) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(workers, len(pages))
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						OutputPath: pages[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = buildPage(pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage renders one page in memory and writes it atomically, so a
// failed render never leaves a truncated file behind.
func buildPage(p PageToBuild) PageResult {
	start := time.Now()
	result := PageResult{OutputPath: p.OutputPath}

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		result.Err = fmt.Errorf("rendering %s: %w", p.OutputPath, err)
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(p.OutputPath, buf.Bytes(), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed pages.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// reportResults logs every page and returns an error wrapping the first
// failure when any page failed.
func reportResults(results []PageResult, logger zerolog.Logger, outDir string) error {
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			logger.Error().Err(r.Err).Str("page", r.OutputPath).Msg("page failed")
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		logger.Debug().Str("page", r.OutputPath).Dur("duration", r.Duration).Msg("page written")
	}

	summary := countResults(results)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d pages failed: %w", summary.Failed, len(results), firstErr)
	}

	logger.Info().Int("pages", summary.Succeeded).Str("output", outDir).Msg("site built")
	return nil
}

// resolvePoolSize determines the number of build workers.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for
// containers), capped at config.MaxWorkers.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return min(workers, config.MaxWorkers)
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return min(n, config.MaxWorkers)
}
