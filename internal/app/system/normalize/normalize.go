// Package normalize provides canonical forms for user-supplied identity
// fields before they are stored or used in lookups.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are compared and
// indexed in this canonical form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and collapses internal runs of
// whitespace to single spaces. Case is preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
