// Package common provides shared utilities for the UI.
package common

import "fmt"

// TruncateName truncates a player name to the specified maximum length.
// A non-positive maxLen yields an empty string.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// Plural formats n with word, adding an "s" unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
