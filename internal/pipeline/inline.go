package pipeline

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// inlineMatchTimeout bounds a single italic rewrite. On timeout the text is
// left unformatted.
const inlineMatchTimeout = 2 * time.Second

var (
	// Bold content cannot contain the delimiter character.
	boldPattern = regexp.MustCompile(`\*\*([^*]+?)\*\*`)

	// Italic needs lookaround so a leftover "**" is never split into two
	// single delimiters. RE2 has no lookaround, hence regexp2.
	italicPattern = newItalicPattern()
)

func newItalicPattern() *regexp2.Regexp {
	re := regexp2.MustCompile(`(?<!\*)\*(?!\*)([^*\n]+?)(?<!\*)\*(?!\*)`, regexp2.None)
	re.MatchTimeout = inlineMatchTimeout
	return re
}

// FormatInline rewrites **bold** to <strong> and then *italic* to <em>.
// Bold runs first so its delimiters are gone before italic is matched.
func FormatInline(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")

	formatted, err := italicPattern.Replace(text, "<em>$1</em>", -1, -1)
	if err != nil {
		return text
	}
	return formatted
}
