package microcoso

import (
	"fmt"
	"io"
	"strings"

	"github.com/microcoso/microcoso/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HeaderExtractor = (*pipeline.LineHeaderExtractor)(nil)
	_ pipeline.CodeProtector   = (*pipeline.PlaceholderCodeProtector)(nil)
	_ pipeline.SpanRewriter    = (*pipeline.TagSpanRewriter)(nil)
	_ pipeline.BlockAssembler  = (*pipeline.LineBlockAssembler)(nil)
	_ pipeline.CodeRestorer    = (*pipeline.PlaceholderCodeRestorer)(nil)
	_ pipeline.Sanitizer       = (*pipeline.PolicySanitizer)(nil)
	_ pipeline.Highlighter     = (*pipeline.ChromaHighlighter)(nil)
)

// Parser runs the markup pipeline. Create with NewParser; the zero value is
// not usable. A Parser holds no per-call state.
type Parser struct {
	headers     pipeline.HeaderExtractor
	protector   pipeline.CodeProtector
	spans       pipeline.SpanRewriter
	blocks      pipeline.BlockAssembler
	restorer    pipeline.CodeRestorer
	sanitizer   pipeline.Sanitizer // nil unless WithSanitizer
	highlighter *pipeline.ChromaHighlighter
}

// NewParser creates a Parser. Returns an error if the highlighting style
// is unknown.
func NewParser(opts ...Option) (*Parser, error) {
	var cfg parserConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newParser(cfg)

	if cfg.highlight {
		hl, err := pipeline.NewChromaHighlighter(cfg.highlightStyle)
		if err != nil {
			return nil, fmt.Errorf("configuring highlighting: %w", err)
		}
		p.highlighter = hl
		p.protector = &pipeline.PlaceholderCodeProtector{Highlighter: hl}
	}

	return p, nil
}

// newParser wires the stages that cannot fail to construct.
func newParser(cfg parserConfig) *Parser {
	p := &Parser{
		headers:   &pipeline.LineHeaderExtractor{},
		protector: &pipeline.PlaceholderCodeProtector{},
		spans:     &pipeline.TagSpanRewriter{EscapeValues: cfg.escapeSpans},
		blocks:    &pipeline.LineBlockAssembler{},
		restorer:  &pipeline.PlaceholderCodeRestorer{},
	}
	if cfg.sanitize {
		p.sanitizer = pipeline.NewPolicySanitizer()
	}
	return p
}

// ParseLines parses a post given as lines (without line terminators).
// Metadata lines are extracted first; the rest is rendered as the body.
func (p *Parser) ParseLines(lines []string) Document {
	meta, bodyLines := p.headers.ExtractHeaders(lines)

	body := strings.Join(bodyLines, "\n")
	body, table := p.protector.ProtectCode(body)
	body = p.spans.RewriteSpans(body)
	body = p.blocks.AssembleBlocks(body)
	body = p.restorer.RestoreCode(body, table)
	if p.sanitizer != nil {
		body = p.sanitizer.Sanitize(body)
	}

	return Document{
		Title:  meta.Title,
		Date:   meta.Date,
		Author: meta.Author,
		Body:   body,
	}
}

// Parse parses a whole post. Line endings are normalized and blank lines
// are kept, since they separate paragraphs and lists.
func (p *Parser) Parse(content string) Document {
	return p.ParseLines(SplitLines(content))
}

// WriteHighlightCSS writes the stylesheet for highlighted code.
// It writes nothing when highlighting is disabled.
func (p *Parser) WriteHighlightCSS(w io.Writer) error {
	if p.highlighter == nil {
		return nil
	}
	return p.highlighter.WriteCSS(w)
}

// SplitLines splits content into lines, accepting \n, \r\n and \r endings.
// A single trailing line terminator does not produce an empty last line.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// defaultParser backs the package-level helpers.
var defaultParser = newParser(parserConfig{})

// Parse parses content with the default options.
func Parse(content string) Document {
	return defaultParser.Parse(content)
}

// ParseLines parses lines with the default options.
func ParseLines(lines []string) Document {
	return defaultParser.ParseLines(lines)
}
