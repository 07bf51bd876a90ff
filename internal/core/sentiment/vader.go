package sentiment

import (
	"context"
	"math"

	"github.com/jonreiter/govader"
)

// NameVADER is the config name of the compound-score strategy
const NameVADER = "vader"

// VADER scores text with the VADER lexicon and rules
// the analyzer only reads its tables after construction so one instance serves all requests
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER loads the embedded VADER lexicon
func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Name implements Estimator
func (v *VADER) Name() string { return NameVADER }

// Estimate uses the compound score as polarity and 1-|compound| as subjectivity
func (v *VADER) Estimate(_ context.Context, text string) (Scores, error) {
	compound := v.analyzer.PolarityScores(text).Compound
	return Scores{
		Polarity:     compound,
		Subjectivity: 1 - math.Abs(compound),
	}, nil
}
