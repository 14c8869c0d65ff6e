package pipeline

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer defines the contract for the optional final cleanup stage.
type Sanitizer interface {
	Sanitize(content string) string
}

// PolicySanitizer filters body HTML through a bluemonday policy that keeps
// everything the other stages emit and drops anything else.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// NewPolicySanitizer creates a sanitizer based on bluemonday's UGC policy.
func NewPolicySanitizer() *PolicySanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowElements("figure", "figcaption")
	p.AllowStyles("max-width", "height").Matching(regexp.MustCompile(`^(100%|auto)$`)).OnElements("img")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)).OnElements("pre", "code", "span")
	return &PolicySanitizer{policy: p}
}

// Sanitize returns content with disallowed elements and attributes removed.
func (s *PolicySanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}
