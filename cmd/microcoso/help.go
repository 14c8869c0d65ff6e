package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: microcoso <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render one post file to HTML")
	fmt.Fprintln(w, "  list       List the posts of a content directory")
	fmt.Fprintln(w, "  build      Write the site as static HTML files")
	fmt.Fprintln(w, "  serve      Serve the site over HTTP")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'microcoso help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// printParserUsage prints the parser and theme flags.
func printParserUsage(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --escape-spans        Escape image and link text and URLs")
	fmt.Fprintln(w, "      --sanitize            Filter bodies through the HTML sanitizer")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code with a language")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "      --style <name>        Stylesheet: default, minimal")
	fmt.Fprintln(w, "      --templates <name>    Template set (default: default)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom theme directory")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: microcoso render <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one post file and print the HTML body to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --page                Print the full themed page")
	fmt.Fprintln(w)
	printParserUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: microcoso list [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print one 'date slug title' line per post, newest first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Content directory (default: content.dir from config)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: microcoso build [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write index.html, style.css and one <slug>.html per post.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Content directory (default: content.dir from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: public/)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printParserUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: microcoso serve [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the site, reading posts again on every request.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Content directory (default: content.dir from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default: :8080)")
	fmt.Fprintln(w)
	printParserUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: microcoso config [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration as YAML after the config file, environment")
	fmt.Fprintln(w, "and flags are applied. The output is a valid config file.")
	fmt.Fprintln(w)
	printParserUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printEnvUsage lists the environment variables.
func printEnvUsage(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MICROCOSO_CONFIG          Config file name or path")
	fmt.Fprintln(w, "  MICROCOSO_CONTENT_DIR     Content directory")
	fmt.Fprintln(w, "  MICROCOSO_OUTPUT_DIR      Build output directory")
	fmt.Fprintln(w, "  MICROCOSO_ADDR            Listen address")
	fmt.Fprintln(w, "  MICROCOSO_STYLE           Stylesheet name")
	fmt.Fprintln(w, "  MICROCOSO_WORKERS         Build workers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priority: flags > environment > config file > defaults.")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		fmt.Fprintln(env.Stdout)
		printEnvUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: microcoso version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: microcoso help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
