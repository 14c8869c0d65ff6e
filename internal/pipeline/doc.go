// Package pipeline implements the stages that turn a post's plain-text markup
// into an HTML fragment.
//
// The stages run in a fixed order because each one relies on the previous
// stages having neutralized conflicting syntax:
//   - header extraction (title, date, author lines)
//   - code protection (fenced and inline code replaced by placeholders)
//   - span rewriting (image and link pseudo-tags)
//   - block assembly (headings, lists, raw HTML lines, paragraphs)
//   - code restoration (placeholders replaced by rendered code)
//
// An optional sanitization stage runs last for content from untrusted authors.
// The root microcoso package wires the stages together; this package keeps
// each one independently testable.
package pipeline
