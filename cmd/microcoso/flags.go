package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// parserFlags holds flags that switch optional parser stages.
type parserFlags struct {
	escapeSpans    bool
	sanitize       bool
	highlight      bool
	highlightStyle string
}

// themeFlags holds asset-related flags.
type themeFlags struct {
	style     string
	templates string
	assetPath string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common commonFlags
	parser parserFlags
	theme  themeFlags
	page   bool
}

// listFlags holds all flags for the list command.
type listFlags struct {
	common commonFlags
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	parser  parserFlags
	theme   themeFlags
	output  string
	workers int
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	parser parserFlags
	theme  themeFlags
	addr   string
}

// configFlags holds all flags for the config command.
type configFlags struct {
	common commonFlags
	parser parserFlags
	theme  themeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addParserFlags adds parser stage flags to a FlagSet.
func addParserFlags(fs *flag.FlagSet, f *parserFlags) {
	fs.BoolVar(&f.escapeSpans, "escape-spans", false, "escape image and link text and URLs")
	fs.BoolVar(&f.sanitize, "sanitize", false, "filter post bodies through the HTML sanitizer")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code with a language")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for highlighted code")
}

// addThemeFlags adds asset flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.templates, "templates", "", "template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom theme directory")
}

// newFlagSet creates a FlagSet that reports errors and usage on w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", stderr, printRenderUsage)

	fs.BoolVar(&f.page, "page", false, "print the full themed page instead of the body")
	addCommonFlags(fs, &f.common)
	addParserFlags(fs, &f.parser)
	addThemeFlags(fs, &f.theme)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseListFlags parses list command flags and returns positional args.
func parseListFlags(args []string, stderr io.Writer) (*listFlags, []string, error) {
	f := &listFlags{}
	fs := newFlagSet("list", stderr, printListUsage)

	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", stderr, printBuildUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addParserFlags(fs, &f.parser)
	addThemeFlags(fs, &f.theme)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve", stderr, printServeUsage)

	fs.StringVar(&f.addr, "addr", "", "listen address (default \":8080\")")
	addCommonFlags(fs, &f.common)
	addParserFlags(fs, &f.parser)
	addThemeFlags(fs, &f.theme)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags and returns positional args.
func parseConfigFlags(args []string, stderr io.Writer) (*configFlags, []string, error) {
	f := &configFlags{}
	fs := newFlagSet("config", stderr, printConfigUsage)

	addCommonFlags(fs, &f.common)
	addParserFlags(fs, &f.parser)
	addThemeFlags(fs, &f.theme)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
