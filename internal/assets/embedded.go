package assets

import "embed"

//go:embed styles templates
var builtin embed.FS

// EmbeddedLoader serves the theme compiled into the binary.
type EmbeddedLoader struct {
	fs fsLoader
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fs: fsLoader{fsys: builtin}}
}

// LoadStyle returns the built-in stylesheet called name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.fs.loadStyle(name)
}

// LoadTemplateSet returns the built-in template set called name.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	return e.fs.loadTemplateSet(name)
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
