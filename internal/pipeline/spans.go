package pipeline

import (
	"html"
	"regexp"
)

// Pseudo-tag patterns. The spacing is part of the syntax: exactly one space
// after the colon and around the pipe, one space before the closing bracket.
var (
	imageTagPattern = regexp.MustCompile(`\[image: (.*?) \| (.*?) \]`)
	linkTagPattern  = regexp.MustCompile(`\[link: (.*?) \| (.*?) \]`)
)

// SpanRewriter defines the contract for rewriting inline pseudo-tags.
type SpanRewriter interface {
	RewriteSpans(content string) string
}

// TagSpanRewriter turns [image: ...] and [link: ...] tags into HTML.
//
// By default alt text, link text and URLs are inserted verbatim: posts come
// from local files written by the site's own authors. Set EscapeValues when
// content may come from untrusted authors.
type TagSpanRewriter struct {
	EscapeValues bool
}

// RewriteSpans rewrites every image tag, then every link tag.
func (r *TagSpanRewriter) RewriteSpans(content string) string {
	content = imageTagPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := imageTagPattern.FindStringSubmatch(match)
		alt, src := r.value(m[1]), r.value(m[2])
		return `<figure><img src="` + src + `" alt="` + alt + `" style="max-width:100%; height:auto;">` +
			`<figcaption>` + alt + `</figcaption></figure>`
	})

	content = linkTagPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := linkTagPattern.FindStringSubmatch(match)
		text, href := r.value(m[1]), r.value(m[2])
		return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + text + `</a>`
	})

	return content
}

func (r *TagSpanRewriter) value(s string) string {
	if r.EscapeValues {
		return html.EscapeString(s)
	}
	return s
}
