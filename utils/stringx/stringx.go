// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string operations the engine relies on beyond
//              the Go standard library: blank checks, case-insensitive
//              comparison, truncation, and default fallbacks. Unicode safe.
// Version: v0.1.0
// Created: 2025-11-12

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or consists only of whitespace
func IsBlank(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one non-whitespace rune
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// EqualsIgnoreCase compares two strings ignoring case, Unicode aware
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ContainsIgnoreCase reports whether substr is within s, ignoring case
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HasPrefixIgnoreCase reports whether s begins with prefix, ignoring case
func HasPrefixIgnoreCase(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// Truncate shortens a string to maxLen runes, appending ellipsis when truncated.
// The ellipsis counts toward the limit.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	keep := maxLen - ellipsisLen
	if keep < 0 {
		keep = 0
	}

	runes := []rune(s)
	return string(runes[:keep]) + ellipsis
}

// FromBlankDefault returns s, or defaultValue when s is blank
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// FirstNonBlank returns the first non-blank string from the arguments
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// NormalizeSpace collapses runs of whitespace into single spaces and trims
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
