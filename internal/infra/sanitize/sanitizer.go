// Package sanitize strips dangerous inline HTML from user-submitted markdown.
//
// Markdown permits raw HTML inline, so a pitch body can smuggle script tags
// past any downstream renderer. Sanitizing at the write boundary keeps the
// stored documents safe regardless of how they are rendered later.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"

	"pitchboard/internal/domain/service"
)

// pitchSanitizer implements service.ContentSanitizer with an allowlist-based
// bluemonday policy. Plain markdown text passes through untouched; inline
// HTML is reduced to a small set of formatting tags.
type pitchSanitizer struct {
	policy *bluemonday.Policy
}

// NewPitchSanitizer builds the sanitizer policy once; the policy is safe for
// concurrent use.
func NewPitchSanitizer() service.ContentSanitizer {
	p := bluemonday.NewPolicy()

	// Formatting tags markdown authors legitimately embed. Everything else,
	// including script, iframe, style, and on* event attributes, is removed
	// by not being on the allowlist.
	p.AllowElements(
		"p", "br", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em", "b", "i",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.RequireNoReferrerOnLinks(true)

	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowURLSchemes("https")

	return &pitchSanitizer{policy: p}
}

// Sanitize returns the markdown with disallowed inline HTML stripped.
// Idempotent: sanitizing twice yields the same result as once.
func (s *pitchSanitizer) Sanitize(markdown string) string {
	return s.policy.Sanitize(markdown)
}
