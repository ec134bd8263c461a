package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

// SanitizeString removes potentially dangerous characters and escapes HTML
func SanitizeString(input string) string {
	trimmed := strings.TrimSpace(input)

	return html.EscapeString(trimmed)
}

// SanitizeText sanitizes multi-line text input such as observations
func SanitizeText(input string) string {
	trimmed := strings.TrimSpace(input)
	escaped := html.EscapeString(trimmed)

	// Remove any control characters except newlines and tabs
	var result strings.Builder
	for _, r := range escaped {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ExtractEmail returns the first email address embedded in a free-text
// contact string, or empty if none is present.
func ExtractEmail(contact string) string {
	re := regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	return re.FindString(contact)
}
