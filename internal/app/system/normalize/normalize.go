// Package normalize provides helper functions for consistent string
// normalization across the application. Use these helpers instead of
// scattered strings.ToLower and strings.TrimSpace calls.
package normalize

import "strings"

// Email normalizes an email address by trimming whitespace and converting to
// lowercase. This is the canonical form for storage and uniqueness checks.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Field normalizes a form field value by trimming whitespace.
func Field(s string) string {
	return strings.TrimSpace(s)
}

// Status normalizes a status value by trimming whitespace. Status values are
// stored title-cased (Draft, Unread, Active), so case is left alone.
func Status(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
