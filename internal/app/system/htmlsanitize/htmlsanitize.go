// Package htmlsanitize strips unsafe HTML from user-entered content before
// it is rendered. Profile descriptions are free text and may contain markup;
// everything outside bluemonday's UGC policy is removed.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with all disallowed tags and attributes removed.
// Plain text passes through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
