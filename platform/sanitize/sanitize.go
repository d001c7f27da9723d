// Package sanitize provides text sanitization utilities for model output and
// free-text form fields.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// htmlTagRegex matches HTML tags
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	// inlineSpaceRegex matches runs of spaces and tabs.
	inlineSpaceRegex = regexp.MustCompile(`[ \t]+`)
)

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Text strips HTML and collapses runs of inline whitespace. Line breaks are
// kept so paragraphs survive.
func Text(s string) string {
	return inlineSpaceRegex.ReplaceAllString(StripHTML(s), " ")
}

// Lines sanitizes each value with Text and drops the ones left empty.
func Lines(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := Text(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
