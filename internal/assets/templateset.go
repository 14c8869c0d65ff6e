package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// Template file names within a set, without extension.
const (
	LayoutTemplate   = "layout"
	IndexTemplate    = "index"
	PostTemplate     = "post"
	NotFoundTemplate = "notfound"
)

// templateNames lists every page a template set must provide.
var templateNames = []string{LayoutTemplate, IndexTemplate, PostTemplate, NotFoundTemplate}

// TemplateSet holds the raw html/template sources of a theme.
type TemplateSet struct {
	Name     string // Set name
	Layout   string // Page skeleton
	Index    string // Post list
	Post     string // Single post
	NotFound string // Unknown slug
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "default"

// readTemplateSet reads every page of a set through read, which returns
// fs.ErrNotExist for missing files. A set with no page at all is reported
// as ErrTemplateSetNotFound so a resolver can fall back.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	pages := make(map[string]string, len(templateNames))
	var missing []string

	for _, tmpl := range templateNames {
		data, err := read(tmpl + ".html")
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, tmpl)
		case errors.Is(err, ErrPathTraversal):
			return nil, err
		case err != nil:
			return nil, fmt.Errorf("%w: reading %s.html: %v", ErrAssetRead, tmpl, err)
		default:
			pages[tmpl] = string(data)
		}
	}

	if len(missing) == len(templateNames) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %s.html", ErrTemplateNotFound, name, missing[0])
	}

	return &TemplateSet{
		Name:     name,
		Layout:   pages[LayoutTemplate],
		Index:    pages[IndexTemplate],
		Post:     pages[PostTemplate],
		NotFound: pages[NotFoundTemplate],
	}, nil
}
