// Package keyphrase picks the most frequent non-trivial words of a text
package keyphrase

import (
	"slices"
	"unicode/utf8"

	"postanalyzer/internal/core/textproc"
)

// DefaultMax is the number of phrases returned when the caller has no preference
const DefaultMax = 5

// minLen is exclusive: a token needs more than this many characters to count
const minLen = 3

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "is", "are", "was", "were", "be", "been", "have",
		"has", "had", "do", "does", "did", "will", "would", "could", "should",
		"may", "might", "can", "this", "that", "these", "those", "i", "you",
		"he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether w (already lower-cased) is ignored by Extract
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

type counted struct {
	word  string
	count int
}

// Extract returns up to n words of text ranked by frequency
// words are lower-cased word-character runs that are not stop words and are
// longer than three characters; ties keep first-appearance order. n < 1 means
// DefaultMax. The result is never nil
func Extract(text string, n int) []string {
	if n < 1 {
		n = DefaultMax
	}
	var order []counted
	index := map[string]int{}
	for _, w := range textproc.Words(textproc.Lower(text)) {
		if utf8.RuneCountInString(w) <= minLen || IsStopWord(w) {
			continue
		}
		if i, ok := index[w]; ok {
			order[i].count++
			continue
		}
		index[w] = len(order)
		order = append(order, counted{word: w, count: 1})
	}

	slices.SortStableFunc(order, func(a, b counted) int { return b.count - a.count })

	out := make([]string, 0, min(n, len(order)))
	for _, c := range order[:min(n, len(order))] {
		out = append(out, c.word)
	}
	return out
}
