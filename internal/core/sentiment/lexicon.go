package sentiment

import (
	"context"

	"postanalyzer/internal/core/textproc"
)

// NameLexicon is the config name of the builtin word-list strategy
const NameLexicon = "lexicon"

var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "love",
	"like", "enjoy", "happy", "joy", "pleased", "satisfied", "perfect", "best",
	"awesome", "brilliant", "outstanding", "superb", "terrific", "cool",
	"positive", "delightful", "thrilled", "excited",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "hate", "dislike", "sad", "angry",
	"frustrated", "disappointed", "worst", "dreadful", "miserable", "upset",
	"annoyed", "irritated",
)

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Lexicon counts hits in fixed positive and negative word lists
// it needs no external resources and never fails
type Lexicon struct{}

// NewLexicon returns the builtin strategy
func NewLexicon() Lexicon { return Lexicon{} }

// Name implements Estimator
func (Lexicon) Name() string { return NameLexicon }

// Estimate returns (pos-neg)/total and min(1, (pos+neg)/total) over word tokens
// text without any word token scores 0 polarity and 0.5 subjectivity
func (Lexicon) Estimate(_ context.Context, text string) (Scores, error) {
	words := textproc.Words(textproc.Lower(text))
	if len(words) == 0 {
		return Scores{Polarity: 0, Subjectivity: 0.5}, nil
	}
	var pos, neg int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		} else if _, ok := negativeWords[w]; ok {
			neg++
		}
	}
	total := float64(len(words))
	return Scores{
		Polarity:     float64(pos-neg) / total,
		Subjectivity: min(1, float64(pos+neg)/total),
	}, nil
}
