// Package slugify derives URL-safe slugs from post titles.
package slugify

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases the title, collapses every run of non-alphanumeric
// characters into a single hyphen, and trims leading/trailing hyphens.
// The derivation is deterministic and idempotent:
//
//	Slug("Getting Started with Next.js!!") == "getting-started-with-next-js"
func Slug(title string) string {
	s := strings.ToLower(title)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
