// Package textutils provides text manipulation utilities shared by the
// matching pipeline.
package textutils

import "strings"

// Normalize lowercases a string and trims surrounding whitespace.
// Every text comparison in the categorization pipeline goes through
// this function so keywords and transaction details fold identically.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
