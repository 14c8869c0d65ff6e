package main

import (
	"errors"
	"os"

	"github.com/microcoso/microcoso"
	"github.com/microcoso/microcoso/internal/assets"
	"github.com/microcoso/microcoso/internal/config"
	"github.com/microcoso/microcoso/internal/content"
	"github.com/microcoso/microcoso/internal/dateutil"
	"github.com/microcoso/microcoso/internal/theme"
)

// Exit codes for the microcoso CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or theme
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/theme errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, microcoso.ErrUnknownStyle) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, theme.ErrTemplateParse) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, content.ErrContentDir) ||
		errors.Is(err, content.ErrPostNotFound) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrReadPost) ||
		errors.Is(err, ErrWritePage) {
		return ExitIO
	}

	return ExitGeneral
}
