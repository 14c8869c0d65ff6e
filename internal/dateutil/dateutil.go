// Package dateutil parses the free-form dates written in post headers and
// renders them with user-friendly display formats.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid display format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrUnparseableDate indicates a header date matching none of PostDateLayouts.
var ErrUnparseableDate = errors.New("unparseable date")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// PostDateLayouts lists the layouts accepted in a post's date header, tried
// in order.
var PostDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"January 2, 2006",
	"2 January 2006",
}

// dateTokens maps display tokens to Go layout components, longest first.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common display formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a display format to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text inside brackets is copied
// literally, so "[Posted] D MMM" keeps "Posted". Other characters pass
// through unchanged.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			layout.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := matchToken(format[i:], &layout)
		if n == 0 {
			layout.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return layout.String(), nil
}

func matchToken(s string, layout *strings.Builder) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			layout.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// ResolveFormat turns a preset name (case-insensitive) or a token format
// into a Go layout.
func ResolveFormat(format string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	return ParseDateFormat(format)
}

// ParsePostDate parses a date header value against PostDateLayouts.
func ParsePostDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range PostDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, value)
}

// FormatDate renders a header date with a display format. Values that do
// not parse, and an empty or invalid format, return value unchanged: a post
// always shows the date its author wrote.
func FormatDate(value, format string) string {
	if format == "" {
		return value
	}
	layout, err := ResolveFormat(format)
	if err != nil {
		return value
	}
	t, err := ParsePostDate(value)
	if err != nil {
		return value
	}
	return t.Format(layout)
}
