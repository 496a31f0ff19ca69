// Package sanitize cleans robot names that arrive from outside the process
// (CLI flags, MCP tool arguments) before they reach logs, the journal, or
// console output.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxNameLength is the maximum allowed length of a robot name, in runes.
const MaxNameLength = 40

var (
	// reMarkupTag matches XML/HTML tags including attributes and self-closing tags.
	reMarkupTag = regexp.MustCompile(`<[/?!]?[a-zA-Z][a-zA-Z0-9]*(?:\s+[^>]*)?/?>`)

	// reWhitespace matches runs of whitespace.
	reWhitespace = regexp.MustCompile(`\s+`)
)

// RobotName returns a single-line, printable form of input:
//  1. Strip control and other non-printable characters
//  2. Strip markup tags
//  3. Collapse whitespace runs (including newlines) to a single space
//  4. Truncate to MaxNameLength runes
//  5. Trim leading/trailing whitespace
//
// An empty result means the caller should fall back to a default name.
func RobotName(input string) string {
	if input == "" {
		return ""
	}

	s := stripNonPrintable(input)
	s = reMarkupTag.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if runes := []rune(s); len(runes) > MaxNameLength {
		s = strings.TrimSpace(string(runes[:MaxNameLength]))
	}
	return s
}

// stripNonPrintable drops control characters. Whitespace controls become
// spaces so that "a\nb" stays two words.
func stripNonPrintable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case !unicode.IsPrint(r):
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
