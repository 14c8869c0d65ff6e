package assets

// AssetLoader defines the contract for loading stylesheets and template sets.
type AssetLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the page templates of a theme by name.
	// Returns ErrTemplateSetNotFound if no template of the set exists,
	// ErrTemplateNotFound if only some are missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
