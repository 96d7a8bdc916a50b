// Package sanitize turns backend-supplied product fields into plain text that
// is safe to print on a terminal.
package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips markup, terminal escape sequences and control characters from s
// and collapses runs of whitespace.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = ansi.Strip(s)
	s = html.UnescapeString(strict.Sanitize(s))
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Link returns the link if it is an absolute http(s) URL without control
// characters, and "" otherwise.
func Link(s string) string {
	s = strings.TrimSpace(s)
	if strings.IndexFunc(s, unicode.IsControl) >= 0 || strings.ContainsAny(s, " \"'<>") {
		return ""
	}
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return ""
	}
	return s
}
