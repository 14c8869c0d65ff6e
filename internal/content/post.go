package content

import (
	"cmp"
	"slices"
	"time"

	"github.com/microcoso/microcoso/internal/dateutil"
)

// Post is a parsed content file.
type Post struct {
	Slug    string
	Title   string
	Date    string // as written in the header
	Author  string
	Body    string // HTML fragment
	Path    string
	ModTime time.Time

	// Published is Date parsed with dateutil.PostDateLayouts; zero when the
	// header value does not parse.
	Published time.Time
}

// HasDate reports whether the post's date header could be parsed.
func (p *Post) HasDate() bool {
	return !p.Published.IsZero()
}

func parsePublished(date string) time.Time {
	t, err := dateutil.ParsePostDate(date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortByDate orders posts newest first. Posts without a parseable date come
// last; ties are broken by slug so the order is stable across runs.
func SortByDate(posts []*Post) {
	slices.SortFunc(posts, comparePosts)
}

func comparePosts(a, b *Post) int {
	switch {
	case a.HasDate() && !b.HasDate():
		return -1
	case !a.HasDate() && b.HasDate():
		return 1
	}
	if c := b.Published.Compare(a.Published); c != 0 {
		return c
	}
	return cmp.Compare(a.Slug, b.Slug)
}
