// Package sanitize strips markup from free-text fields supplied by
// untrusted callers before they are persisted.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes all HTML elements and attributes, leaving text content.
var strict = bluemonday.StrictPolicy()

// Text returns s with any markup removed and surrounding whitespace
// trimmed. Entities introduced by the sanitizer are unescaped so plain
// characters like "&" survive the round trip.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
