package assets

import "errors"

// AssetResolver layers a custom theme directory over the embedded theme.
// Lookups try the directory first and fall back to the embedded copy only
// when the asset does not exist there.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// the embedded theme only; an invalid one returns ErrInvalidBasePath.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a stylesheet, custom directory first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return loadWithFallback(r, func(loader AssetLoader) (string, error) {
		return loader.LoadStyle(name)
	})
}

// LoadTemplateSet loads a template set, custom directory first. A custom
// set missing only some pages is an error, not a fallback.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	return loadWithFallback(r, func(loader AssetLoader) (*TemplateSet, error) {
		return loader.LoadTemplateSet(name)
	})
}

// HasCustomLoader returns true if a custom asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

func loadWithFallback[T any](r *AssetResolver, load func(AssetLoader) (T, error)) (T, error) {
	if r.custom == nil {
		return load(r.embedded)
	}

	v, err := load(r.custom)
	if err == nil || !isNotFoundError(err) {
		return v, err
	}
	return load(r.embedded)
}

// isNotFoundError reports whether err means the asset is absent, as opposed
// to invalid, unreadable or incomplete.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateSetNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
