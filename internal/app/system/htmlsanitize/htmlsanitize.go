// Package htmlsanitize strips dangerous markup from rich-text fields before
// they are stored. Blog content and team bios arrive from an admin rich-text
// editor, so formatting tags survive but scripts and event handlers do not.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Plain text passes through
// unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
