package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Code placeholders use Unicode Private Use Area runes, which prose cannot
// produce and which no later stage pattern matches. Block tokens start with
// '<' so that a token alone on a line is assembled as a raw HTML line rather
// than wrapped in a paragraph. Inline tokens must not start with '<'.
const (
	PlaceholderStart = "\uE000" // U+E000: Private Use Area
	PlaceholderEnd   = "\uE001" // U+E001: Private Use Area

	blockTokenPrefix  = "<" + PlaceholderStart + "b"
	blockTokenSuffix  = PlaceholderEnd + ">"
	inlineTokenPrefix = PlaceholderStart + "i"
	inlineTokenSuffix = PlaceholderEnd
)

var (
	// Fenced code spans newlines and stops at the first closing fence.
	fencedCodePattern = regexp.MustCompile("(?s)```(.*?)```")

	// Inline code stays on one line.
	inlineCodePattern = regexp.MustCompile("`([^`\n]+?)`")

	// Optional language name directly after an opening fence.
	fenceLanguagePattern = regexp.MustCompile(`^[A-Za-z0-9_+#.-]+$`)
)

// CodeTable maps placeholder tokens to the HTML they stand for.
// A table belongs to a single parse call.
type CodeTable struct {
	tokens   []string
	rendered []string
}

// Len returns the number of recorded placeholders.
func (t *CodeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tokens)
}

func (t *CodeTable) add(token, rendered string) {
	t.tokens = append(t.tokens, token)
	t.rendered = append(t.rendered, rendered)
}

// replacer builds a literal replacer over every recorded token.
func (t *CodeTable) replacer() *strings.Replacer {
	pairs := make([]string, 0, len(t.tokens)*2)
	for i, tok := range t.tokens {
		pairs = append(pairs, tok, t.rendered[i])
	}
	return strings.NewReplacer(pairs...)
}

// Highlighter renders source code in a named language as HTML.
// It reports false when the language is unknown or rendering fails.
type Highlighter interface {
	Highlight(lang, code string) (string, bool)
}

// CodeProtector defines the contract for shielding code from later stages.
type CodeProtector interface {
	ProtectCode(content string) (string, *CodeTable)
}

// PlaceholderCodeProtector replaces fenced and inline code with placeholders.
// With a Highlighter set, fenced blocks opening with a language name are
// syntax-highlighted; otherwise their whole interior is escaped verbatim.
type PlaceholderCodeProtector struct {
	Highlighter Highlighter
}

// ProtectCode returns content with every code span replaced by a placeholder,
// along with the table needed to restore them.
// Fenced blocks are protected first so the inline pattern cannot match
// inside a fence.
func (p *PlaceholderCodeProtector) ProtectCode(content string) (string, *CodeTable) {
	table := &CodeTable{}
	next := 0

	content = fencedCodePattern.ReplaceAllStringFunc(content, func(match string) string {
		inner := fencedCodePattern.FindStringSubmatch(match)[1]
		token := blockTokenPrefix + strconv.Itoa(next) + blockTokenSuffix
		next++
		table.add(token, p.renderFenced(inner))
		return token
	})

	content = inlineCodePattern.ReplaceAllStringFunc(content, func(match string) string {
		inner := inlineCodePattern.FindStringSubmatch(match)[1]
		token := inlineTokenPrefix + strconv.Itoa(next) + inlineTokenSuffix
		next++
		table.add(token, "<code>"+html.EscapeString(inner)+"</code>")
		return token
	})

	return content, table
}

// renderFenced renders the interior of a fenced block.
func (p *PlaceholderCodeProtector) renderFenced(inner string) string {
	if p.Highlighter != nil {
		if lang, code, ok := splitFenceLanguage(inner); ok {
			if out, ok := p.Highlighter.Highlight(lang, code); ok {
				return out
			}
		}
	}
	return "<pre><code>" + html.EscapeString(strings.Trim(inner, "\n")) + "</code></pre>"
}

// splitFenceLanguage splits "lang\ncode" into its parts.
func splitFenceLanguage(inner string) (lang, code string, ok bool) {
	first, rest, found := strings.Cut(inner, "\n")
	if !found || !fenceLanguagePattern.MatchString(first) {
		return "", "", false
	}
	return first, strings.Trim(rest, "\n"), true
}
