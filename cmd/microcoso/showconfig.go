package main

import (
	"context"
	"fmt"
)

// runConfig prints the effective configuration after the config file,
// environment and theme/parser flags are applied.
func runConfig(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	cfg, _, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	if err := applyContentDir(positional, cfg); err != nil {
		return err
	}
	mergeParserFlags(flags.parser, cfg)
	mergeThemeFlags(flags.theme, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
