package main

import (
	"io"
	"os"
	"time"

	"github.com/microcoso/microcoso/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and asset loading.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(key string) string
	Environ func() []string

	// AssetLoader is used when neither the config nor --asset-path names a
	// theme directory.
	AssetLoader assets.AssetLoader

	// NoColor disables colored log output. DefaultEnv sets it when stderr
	// is not a terminal.
	NoColor bool
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		AssetLoader: assets.NewEmbeddedLoader(),
		NoColor:     !isTerminal(os.Stderr),
	}
}
