package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound       = errors.New("style not found")
	ErrTemplateSetNotFound = errors.New("template set not found")
	ErrTemplateNotFound    = errors.New("template not found") // set lacks some pages
	ErrInvalidAssetName    = errors.New("invalid asset name")
	ErrInvalidBasePath     = errors.New("invalid base path")
	ErrAssetRead           = errors.New("failed to read asset")
	ErrPathTraversal       = errors.New("path traversal detected")
)
