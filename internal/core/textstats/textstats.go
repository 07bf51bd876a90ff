// Package textstats computes size metrics of a text
package textstats

import "postanalyzer/internal/core/textproc"

// WordsPerMinute is the reading speed used for ReadingTime
const WordsPerMinute = 200.0

// Stats are the size metrics reported for a text
type Stats struct {
	WordCount          int
	ReadingTimeMinutes float64
}

// WordCount counts whitespace-separated tokens
func WordCount(text string) int { return len(textproc.Fields(text)) }

// ReadingTime converts a word count to minutes, unrounded
func ReadingTime(words int) float64 { return float64(words) / WordsPerMinute }

// Compute returns both metrics for text
func Compute(text string) Stats {
	n := WordCount(text)
	return Stats{WordCount: n, ReadingTimeMinutes: ReadingTime(n)}
}
