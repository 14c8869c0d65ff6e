package microcoso

import "github.com/microcoso/microcoso/internal/pipeline"

// Default metadata values, used when a post omits a header line.
const (
	DefaultTitle  = pipeline.DefaultTitle
	DefaultDate   = pipeline.DefaultDate
	DefaultAuthor = pipeline.DefaultAuthor
)

// Document is the result of parsing one post.
type Document struct {
	Title  string
	Date   string
	Author string
	Body   string // HTML fragment
}

// Option configures a Parser.
type Option func(*parserConfig)

// parserConfig holds the options collected by NewParser.
type parserConfig struct {
	escapeSpans    bool
	sanitize       bool
	highlight      bool
	highlightStyle string
}

// WithEscapedSpans HTML-escapes the alt text, link text and URLs of image
// and link tags. By default they are inserted verbatim, which is only safe
// when every post author is trusted.
func WithEscapedSpans() Option {
	return func(c *parserConfig) {
		c.escapeSpans = true
	}
}

// WithSanitizer filters the final body through an HTML sanitization policy
// that keeps the markup the parser emits and drops everything else.
func WithSanitizer() Option {
	return func(c *parserConfig) {
		c.sanitize = true
	}
}

// WithHighlighting enables syntax highlighting of fenced code whose opening
// fence is followed by a language name. An empty style selects the default.
func WithHighlighting(style string) Option {
	return func(c *parserConfig) {
		c.highlight = true
		c.highlightStyle = style
	}
}
