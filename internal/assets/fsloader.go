package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Top-level directories of a theme.
const (
	stylesDir    = "styles"
	templatesDir = "templates"
)

// fsLoader reads a theme laid out as styles/NAME.css and
// templates/NAME/PAGE.html from a file system. EmbeddedLoader and
// FilesystemLoader differ only in the file system and the guard.
type fsLoader struct {
	fsys fs.FS

	// guard vets a slash-separated path before it is read; nil when every
	// path of fsys is trusted.
	guard func(name string) error
}

func (l fsLoader) read(name string) ([]byte, error) {
	if l.guard != nil {
		if err := l.guard(name); err != nil {
			return nil, err
		}
	}
	return fs.ReadFile(l.fsys, name)
}

func (l fsLoader) loadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := l.read(path.Join(stylesDir, name+".css"))
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case errors.Is(err, ErrPathTraversal):
		return "", err
	default:
		return "", fmt.Errorf("%w: style %q: %v", ErrAssetRead, name, err)
	}
}

func (l fsLoader) loadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	return readTemplateSet(name, func(file string) ([]byte, error) {
		return l.read(path.Join(templatesDir, name, file))
	})
}
