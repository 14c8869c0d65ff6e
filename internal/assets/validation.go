package assets

import (
	"fmt"
	"regexp"
)

// MaxAssetNameLength bounds style and template set names.
const MaxAssetNameLength = 64

// assetNamePattern allows letters, digits, hyphens and underscores only.
var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName checks that an asset name is safe for use as a file or
// directory name. Separators, dots and anything outside [A-Za-z0-9_-] are
// rejected, which rules out traversal and extension tricks.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAssetName, MaxAssetNameLength)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
