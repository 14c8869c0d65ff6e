package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Line classification patterns, applied in precedence order.
var (
	// A single '#' is not a heading.
	headingPattern       = regexp.MustCompile(`^(#{2,6})\s+(.+)$`)
	unorderedItemPattern = regexp.MustCompile(`^[-*] (.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^[0-9]+\. (.*)$`)
)

// softBreak separates the source lines of one paragraph.
const softBreak = "<br />\n"

// lineKind is the classification of one input line.
type lineKind int

const (
	lineText lineKind = iota
	lineHeading
	lineUnordered
	lineOrdered
	lineHTML
	lineBlank
)

// classifiedLine is a line reduced to what the assembler needs.
type classifiedLine struct {
	kind  lineKind
	level int    // heading level, 2-6
	text  string // heading text, item text, trimmed paragraph text or raw HTML
}

// classifyLine applies the precedence rules: heading, unordered item,
// ordered item, raw HTML, blank, text. The first match wins.
func classifyLine(line string) classifiedLine {
	line = strings.TrimRight(line, " \t\r")

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return classifiedLine{kind: lineHeading, level: len(m[1]), text: strings.TrimSpace(m[2])}
	}
	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		return classifiedLine{kind: lineUnordered, text: strings.TrimSpace(m[1])}
	}
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		return classifiedLine{kind: lineOrdered, text: strings.TrimSpace(m[1])}
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "<"):
		return classifiedLine{kind: lineHTML, text: line}
	case trimmed == "":
		return classifiedLine{kind: lineBlank}
	default:
		return classifiedLine{kind: lineText, text: trimmed}
	}
}

// ListKind distinguishes bulleted from numbered lists.
type ListKind int

const (
	Unordered ListKind = iota
	Ordered
)

func (k ListKind) tag() string {
	if k == Ordered {
		return "ol"
	}
	return "ul"
}

// listKindOf maps an item line to its list kind.
func listKindOf(kind lineKind) ListKind {
	if kind == lineOrdered {
		return Ordered
	}
	return Unordered
}

// assemblerState is the block-level state. A paragraph and a list are never
// open at the same time.
type assemblerState int

const (
	stateIdle assemblerState = iota
	stateParagraph
	stateList
)

// BlockAssembler defines the contract for grouping lines into HTML blocks.
type BlockAssembler interface {
	AssembleBlocks(content string) string
}

// LineBlockAssembler groups lines into headings, lists, raw HTML lines and
// paragraphs. Blank lines separate blocks.
type LineBlockAssembler struct{}

// AssembleBlocks renders content as HTML blocks joined by newlines.
func (a *LineBlockAssembler) AssembleBlocks(content string) string {
	asm := &assembly{}
	for _, line := range strings.Split(content, "\n") {
		asm.feed(classifyLine(line))
	}
	asm.flush()
	return strings.Join(asm.blocks, "\n")
}

// assembly carries the state of one AssembleBlocks call.
type assembly struct {
	state     assemblerState
	listKind  ListKind
	paragraph []string
	items     []string
	blocks    []string
}

// feed applies the transition for one classified line.
func (a *assembly) feed(l classifiedLine) {
	switch l.kind {
	case lineHeading:
		a.flush()
		lvl := strconv.Itoa(l.level)
		a.emit("<h" + lvl + ">" + FormatInline(l.text) + "</h" + lvl + ">")

	case lineUnordered, lineOrdered:
		kind := listKindOf(l.kind)
		if a.state == stateParagraph || (a.state == stateList && a.listKind != kind) {
			a.flush()
		}
		if a.state == stateIdle {
			a.state = stateList
			a.listKind = kind
		}
		a.items = append(a.items, "<li>"+FormatInline(l.text)+"</li>")

	case lineHTML:
		a.flush()
		a.emit(l.text)

	case lineBlank:
		a.flush()

	case lineText:
		if a.state == stateList {
			a.flush()
		}
		a.state = stateParagraph
		a.paragraph = append(a.paragraph, l.text)
	}
}

// flush closes whatever block is open and returns to idle.
func (a *assembly) flush() {
	switch a.state {
	case stateParagraph:
		text := FormatInline(strings.Join(a.paragraph, "\n"))
		a.emit("<p>" + strings.ReplaceAll(text, "\n", softBreak) + "</p>")
		a.paragraph = a.paragraph[:0]
	case stateList:
		tag := a.listKind.tag()
		a.emit("<" + tag + ">" + strings.Join(a.items, "") + "</" + tag + ">")
		a.items = a.items[:0]
	}
	a.state = stateIdle
}

func (a *assembly) emit(block string) {
	a.blocks = append(a.blocks, block)
}
