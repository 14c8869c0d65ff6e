package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/microcoso/microcoso/internal/content"
)

func TestRunRender(t *testing.T) {
	t.Parallel()

	dir := newContentDir(t)
	hello := filepath.Join(dir, "hello.txt")

	t.Run("body only", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(nil)
		if err := runRender(context.Background(), []string{hello}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "<p>First <strong>post</strong>.</p>\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
	})

	t.Run("full page", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(nil)
		if err := runRender(context.Background(), []string{hello, "--page"}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := stdout.String()
		for _, want := range []string{
			"<!DOCTYPE html>",
			"<title>Hello - microcoso</title>",
			`href="style.css"`,
			`href="index.html"`,
			"<strong>post</strong>",
			"&copy; 2025 microcoso",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("page missing %q", want)
			}
		}
	})

	t.Run("highlighted code", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(nil)
		if err := runRender(context.Background(), []string{filepath.Join(dir, "later.txt"), "--highlight"}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "chroma") {
			t.Errorf("stdout = %q, want chroma markup", stdout.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		err := runRender(context.Background(), []string{filepath.Join(dir, "gone.txt")}, env)
		if !errors.Is(err, content.ErrPostNotFound) {
			t.Errorf("error = %v, want ErrPostNotFound", err)
		}
		if exitCodeFor(err) != ExitIO {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitIO)
		}
	})

	t.Run("too many files", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		err := runRender(context.Background(), []string{hello, hello}, env)
		if !errors.Is(err, ErrMissingArgument) {
			t.Errorf("error = %v, want ErrMissingArgument", err)
		}
	})
}
