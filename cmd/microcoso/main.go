// Command microcoso renders, lists, builds and serves a blog kept as plain
// text files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidFlags    = errors.New("invalid flags")
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain runs one command and maps its error to an exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// run dispatches args[0] to a command.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrMissingArgument)
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "render":
		err = runRender(ctx, rest, env)
	case "list":
		err = runList(ctx, rest, env)
	case "build":
		err = runBuild(ctx, rest, env)
	case "serve":
		err = runServe(ctx, rest, env)
	case "config":
		err = runConfig(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "microcoso %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	// -h on a command prints its usage through pflag and is not a failure.
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
