package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates the requested highlighting style does not exist.
var ErrUnknownStyle = errors.New("unknown highlighting style")

// DefaultHighlightStyle is used when no style name is configured.
const DefaultHighlightStyle = "github"

// ChromaHighlighter highlights fenced code with chroma, emitting CSS classes
// so the page stylesheet controls colors.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// An empty name selects DefaultHighlightStyle.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	return &ChromaHighlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// Highlight renders code in lang. Unknown languages report false so the
// caller falls back to plain escaped output.
func (h *ChromaHighlighter) Highlight(lang, code string) (string, bool) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}

// WriteCSS writes the stylesheet matching the highlighter's classes.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
