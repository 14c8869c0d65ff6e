package pipeline

import (
	"regexp"
	"strings"
)

// Default metadata values used when a header line is absent.
const (
	DefaultTitle  = "Titolo Sconosciuto"
	DefaultDate   = "9999-12-31" // Sorts before any real date when listing newest first
	DefaultAuthor = "Autore Sconosciuto"
)

// headerPattern matches "[key]=value" metadata lines. Keys are case-insensitive.
var headerPattern = regexp.MustCompile(`(?i)^\[(title|date|author)\]=(.*)$`)

// Metadata holds the recognized header fields of a post.
type Metadata struct {
	Title  string
	Date   string
	Author string
}

// DefaultMetadata returns metadata with every field set to its default.
func DefaultMetadata() Metadata {
	return Metadata{
		Title:  DefaultTitle,
		Date:   DefaultDate,
		Author: DefaultAuthor,
	}
}

// HeaderExtractor defines the contract for splitting metadata from body lines.
type HeaderExtractor interface {
	ExtractHeaders(lines []string) (Metadata, []string)
}

// LineHeaderExtractor recognizes one "[key]=value" header per line.
// Headers may appear anywhere in the file.
type LineHeaderExtractor struct{}

// ExtractHeaders returns the metadata found in lines and the remaining body
// lines in their original order. Duplicate headers overwrite earlier ones.
func (e *LineHeaderExtractor) ExtractHeaders(lines []string) (Metadata, []string) {
	meta := DefaultMetadata()
	body := make([]string, 0, len(lines))

	for _, line := range lines {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			body = append(body, line)
			continue
		}

		value := strings.TrimSpace(m[2])
		switch strings.ToLower(m[1]) {
		case "title":
			meta.Title = value
		case "date":
			meta.Date = value
		case "author":
			meta.Author = value
		}
	}

	return meta, body
}
