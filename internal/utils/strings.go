package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskSecret hides a secret for display, keeping its length visible up to
// a cap.
func MaskSecret(secret string) string {
	n := utf8.RuneCountInString(secret)
	if n == 0 {
		return "(empty)"
	}
	if n > 12 {
		n = 12
	}
	return strings.Repeat("•", n)
}

// Pluralize returns word with an "s" appended unless n is 1.
func Pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
