// Package textproc holds the text primitives every analysis stage shares
// Lowercasing, trimming, splitting and word tokenization follow the rules the
// service has always applied so scores stay comparable across versions
package textproc

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers are not safe for concurrent use, so each call borrows one
var casePool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Lower applies full Unicode lower-case mapping (not ASCII-only)
func Lower(s string) string {
	if s == "" {
		return s
	}
	c := casePool.Get().(*cases.Caser)
	out := c.String(s)
	casePool.Put(c)
	return out
}

// IsSpace reports whether r separates words
// unicode.IsSpace plus the ASCII file/group/record/unit separators
func IsSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

// Trim removes leading and trailing whitespace
func Trim(s string) string { return strings.TrimFunc(s, IsSpace) }

// Fields splits on runs of whitespace, dropping empties
func Fields(s string) []string { return strings.FieldsFunc(s, IsSpace) }

// IsWord reports whether r belongs to a word token: letters, numbers and underscore
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Words returns the maximal runs of word characters in s, in order
// callers lower-case first when they need case-insensitive tokens
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !IsWord(r) })
}
