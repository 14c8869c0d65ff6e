package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/microcoso/microcoso/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunBuild - Static site output
// ---------------------------------------------------------------------------

func TestRunBuild(t *testing.T) {
	t.Parallel()

	t.Run("writes every page", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "public")
		env, _, stderr := testEnv(nil)
		err := runBuild(context.Background(), []string{newContentDir(t), "-o", out, "-w", "2"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, name := range []string{"index.html", "style.css", "hello.html", "later.html", "draft.html"} {
			if _, err := os.Stat(filepath.Join(out, name)); err != nil {
				t.Errorf("missing %s: %v", name, err)
			}
		}

		index, err := os.ReadFile(filepath.Join(out, "index.html"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(index), `href="hello.html"`) {
			t.Error("index does not link posts with static URLs")
		}
		if strings.Index(string(index), "later.html") > strings.Index(string(index), "hello.html") {
			t.Error("index is not ordered newest first")
		}
		if !strings.Contains(stderr.String(), "site built") {
			t.Errorf("stderr = %q, want a summary line", stderr.String())
		}
	})

	t.Run("quiet hides summary", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv(nil)
		err := runBuild(context.Background(), []string{newContentDir(t), "-o", t.TempDir(), "-q"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stderr.Len() != 0 {
			t.Errorf("stderr = %q, want empty", stderr.String())
		}
	})

	t.Run("output dir from environment", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "site")
		env, _, _ := testEnv(map[string]string{"MICROCOSO_OUTPUT_DIR": out})
		if err := runBuild(context.Background(), []string{newContentDir(t)}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
			t.Errorf("index.html not written to env output dir: %v", err)
		}
	})

	t.Run("too many workers", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		err := runBuild(context.Background(), []string{newContentDir(t), "-o", t.TempDir(), "-w", "1000"}, env)
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
		if exitCodeFor(err) != ExitUsage {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
		}
	})

	t.Run("output path is a file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "taken")
		writeFile(t, out, "x")

		env, _, _ := testEnv(nil)
		err := runBuild(context.Background(), []string{newContentDir(t), "-o", out}, env)
		if !errors.Is(err, ErrWritePage) {
			t.Errorf("error = %v, want ErrWritePage", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildPages - Worker pool
// ---------------------------------------------------------------------------

func TestBuildPages(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		if results := buildPages(context.Background(), 4, nil); results != nil {
			t.Errorf("results = %v, want nil", results)
		}
	})

	t.Run("keeps order and reports failures", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		boom := errors.New("boom")
		pages := []PageToBuild{
			{OutputPath: filepath.Join(dir, "a.html"), Render: writeString("a")},
			{OutputPath: filepath.Join(dir, "b.html"), Render: func(io.Writer) error { return boom }},
			{OutputPath: filepath.Join(dir, "c.html"), Render: writeString("c")},
		}

		results := buildPages(context.Background(), 8, pages)
		if len(results) != len(pages) {
			t.Fatalf("got %d results, want %d", len(results), len(pages))
		}
		for i, r := range results {
			if r.OutputPath != pages[i].OutputPath {
				t.Errorf("results[%d].OutputPath = %q, want %q", i, r.OutputPath, pages[i].OutputPath)
			}
		}
		if !errors.Is(results[1].Err, boom) {
			t.Errorf("results[1].Err = %v, want boom", results[1].Err)
		}
		if _, err := os.Stat(pages[1].OutputPath); !os.IsNotExist(err) {
			t.Error("failed page left a file behind")
		}

		summary := countResults(results)
		if summary.Succeeded != 2 || summary.Failed != 1 {
			t.Errorf("summary = %+v, want 2 succeeded, 1 failed", summary)
		}

		err := reportResults(results, zerolog.Nop(), dir)
		if !errors.Is(err, boom) {
			t.Errorf("reportResults error = %v, want boom", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dir := t.TempDir()
		results := buildPages(ctx, 1, []PageToBuild{
			{OutputPath: filepath.Join(dir, "a.html"), Render: writeString("a")},
		})
		if !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("Err = %v, want context.Canceled", results[0].Err)
		}
	})
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

// ---------------------------------------------------------------------------
// TestResolvePoolSize - Worker count
// ---------------------------------------------------------------------------

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	auto := min(max(runtime.GOMAXPROCS(0), 1), config.MaxWorkers)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 3, 3},
		{"capped", config.MaxWorkers + 10, config.MaxWorkers},
		{"auto", 0, auto},
		{"negative is auto", -1, auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("resolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}
