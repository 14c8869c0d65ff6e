package theme

import "net/url"

// URLScheme maps site resources to the links written into pages.
type URLScheme interface {
	Home() string
	Style() string
	Post(slug string) string
}

// QueryURLs links posts as "/?post=slug", the scheme of the preview server.
type QueryURLs struct{}

func (QueryURLs) Home() string  { return "/" }
func (QueryURLs) Style() string { return "/style.css" }

func (QueryURLs) Post(slug string) string {
	return "/?post=" + url.QueryEscape(slug)
}

// StaticURLs links posts as relative "slug.html" files, the layout written
// by a static build.
type StaticURLs struct{}

func (StaticURLs) Home() string  { return "index.html" }
func (StaticURLs) Style() string { return "style.css" }

func (StaticURLs) Post(slug string) string {
	return url.PathEscape(slug) + ".html"
}

var (
	_ URLScheme = QueryURLs{}
	_ URLScheme = StaticURLs{}
)
