// Package htmlsanitize provides HTML sanitization for blog rich-text content.
// It uses bluemonday to strip potentially dangerous HTML while preserving
// safe formatting.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy is the shared bluemonday policy for sanitizing rich text.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// UGC policy covers the formatting the blog editor produces
		policy = bluemonday.UGCPolicy()

		// Allow tables
		policy.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")

		// Allow common text formatting
		policy.AllowElements("u", "s", "sub", "sup", "mark")

		// Embedded YouTube iframes are not allowed; the youtubeUrl field
		// exists for that instead.
	})
	return policy
}

// Sanitize cleans HTML input, removing potentially dangerous elements and
// attributes. It preserves safe formatting like bold, italic, lists, links,
// and tables.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}
