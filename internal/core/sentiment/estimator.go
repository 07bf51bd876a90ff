// Package sentiment estimates polarity and subjectivity through an ordered
// chain of strategies; the first strategy that succeeds decides the scores
package sentiment

import "context"

// Label values derived from a polarity score
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

// labelThreshold is exclusive on both sides: exactly 0.1 and -0.1 are neutral
const labelThreshold = 0.1

// Scores is what every strategy produces
// Polarity is in [-1, 1] and Subjectivity in [0, 1]
type Scores struct {
	Polarity     float64
	Subjectivity float64
}

// Result carries the scores plus the strategy that produced them
type Result struct {
	Scores
	Method string
}

// Estimator is one strategy in the chain
// Estimate is only called with non-empty trimmed text
type Estimator interface {
	Name() string
	Estimate(ctx context.Context, text string) (Scores, error)
}

// Label maps a polarity score to positive, negative or neutral
func Label(score float64) string {
	switch {
	case score > labelThreshold:
		return Positive
	case score < -labelThreshold:
		return Negative
	default:
		return Neutral
	}
}
