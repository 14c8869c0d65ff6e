package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger: human-readable lines on w, info level,
// debug with --verbose, errors only with --quiet.
func newLogger(w io.Writer, common commonFlags, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case common.quiet:
		level = zerolog.ErrorLevel
	case common.verbose:
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
