package content

import "regexp"

// unsafeSlugChars matches every character a slug may not contain.
var unsafeSlugChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeSlug drops every character outside [a-zA-Z0-9_-].
// "../etc/passwd" becomes "etcpasswd".
func SanitizeSlug(raw string) string {
	return unsafeSlugChars.ReplaceAllString(raw, "")
}
