package domain

import (
	"context"

	"postanalyzer/internal/core/classify"
	"postanalyzer/internal/core/sentiment"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Analyze(ctx context.Context, text string) (AnalysisResult, error)
	Categories() *classify.Table
}

// SentimentPort scores polarity and subjectivity; *sentiment.Chain satisfies it
type SentimentPort interface {
	Estimate(ctx context.Context, text string) (sentiment.Result, error)
}

// ReadinessPort reports which sentiment strategies loaded; exported to the meta module
type ReadinessPort interface {
	Statuses() []sentiment.Status
	Methods() []string
}
