package utils

import (
	"strings"
	"unicode"
)

// ContainsControlChars reports whether s has control characters, which no
// typed query contains.
func ContainsControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidQuery checks if a query should be looked up at all. Empty queries,
// queries longer than maxLen bytes and queries with control characters are
// rejected. A maxLen of 0 disables the length check.
func IsValidQuery(s string, maxLen int) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if maxLen > 0 && len(s) > maxLen {
		return false
	}
	return !ContainsControlChars(s)
}
