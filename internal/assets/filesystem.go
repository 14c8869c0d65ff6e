package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves a theme directory on disk. Every read is checked
// to stay inside the directory after symlinks are resolved.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
	fs   fsLoader
}

// NewFilesystemLoader opens the theme directory dir.
// It returns ErrInvalidBasePath unless dir is a readable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	if _, err := os.ReadDir(root); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	l := &FilesystemLoader{root: root}
	l.fs = fsLoader{fsys: os.DirFS(root), guard: l.contain}
	return l, nil
}

// LoadStyle reads {dir}/styles/{name}.css.
func (l *FilesystemLoader) LoadStyle(name string) (string, error) {
	return l.fs.loadStyle(name)
}

// LoadTemplateSet reads {dir}/templates/{name}/{layout,index,post,notfound}.html.
func (l *FilesystemLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	return l.fs.loadTemplateSet(name)
}

// contain rejects a path whose real location is outside the root. A path
// that does not exist is checked as written and fails later on read.
func (l *FilesystemLoader) contain(name string) error {
	full := filepath.Join(l.root, filepath.FromSlash(name))
	if resolved, err := filepath.EvalSymlinks(full); err == nil {
		full = resolved
	}

	rel, err := filepath.Rel(l.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, name)
	}
	return nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
