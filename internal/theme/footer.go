package theme

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// footerMarkdown converts the site footer. Raw HTML in the source is
// omitted; goldmark only emits it with html.WithUnsafe.
var footerMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,       // bare URLs become links
		extension.Strikethrough, // ~~text~~
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithXHTML(),
	),
)

// renderFooter converts CommonMark to trusted HTML. An empty source yields
// an empty fragment so the layout can fall back to its own footer.
func renderFooter(source string) (template.HTML, error) {
	if source == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := footerMarkdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering footer: %w", err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- goldmark output without WithUnsafe
}
