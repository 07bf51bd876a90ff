// Package service runs the analysis pipeline for one text
package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"postanalyzer/internal/core/classify"
	"postanalyzer/internal/core/keyphrase"
	"postanalyzer/internal/core/sentiment"
	"postanalyzer/internal/core/textproc"
	"postanalyzer/internal/core/textstats"
	perr "postanalyzer/internal/platform/errors"
	"postanalyzer/internal/platform/logger"
	"postanalyzer/internal/services/api/analysis/domain"
)

// ErrEmptyText is returned when the text is empty after trimming
var ErrEmptyText = perr.Validationf("Text cannot be empty")

// previewLen caps how much of the text is written to debug logs
const previewLen = 100

// Service defines the analysis service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analysis pipeline
type Svc struct {
	sentiment  domain.SentimentPort
	table      *classify.Table
	maxPhrases int
	now        func() time.Time
}

// New constructs the analysis service
// maxPhrases < 1 falls back to keyphrase.DefaultMax; a nil table means classify.Default
func New(s domain.SentimentPort, table *classify.Table, maxPhrases int) *Svc {
	if s == nil {
		panic("analysis.Service requires a non nil SentimentPort")
	}
	if table == nil {
		table = classify.Default
	}
	if maxPhrases < 1 {
		maxPhrases = keyphrase.DefaultMax
	}
	return &Svc{sentiment: s, table: table, maxPhrases: maxPhrases, now: time.Now}
}

// Categories returns the keyword table used by Analyze
func (s *Svc) Categories() *classify.Table { return s.table }

// Analyze trims text, rejects it when empty, then runs sentiment, category,
// key phrase and metric stages in order
// any failure after validation, panics included, becomes "Analysis failed: <cause>"
func (s *Svc) Analyze(ctx context.Context, raw string) (out domain.AnalysisResult, err error) {
	log := logger.C(ctx)
	start := s.now()
	log.Info().Int("text_length", utf8.RuneCountInString(raw)).Msg("analysis request received")
	log.Debug().Str("preview", preview(raw)).Msg("analysis text")

	text := textproc.Trim(raw)
	if text == "" {
		log.Error().Msg("empty text provided")
		return domain.AnalysisResult{}, ErrEmptyText
	}

	defer func() {
		if r := recover(); r != nil {
			err = failed(perr.PanicErrf("%v", r))
		}
		if err != nil {
			log.Error().Err(err).Msg("analysis failed")
			out = domain.AnalysisResult{}
		}
	}()

	res, err := s.sentiment.Estimate(ctx, text)
	if err != nil {
		return domain.AnalysisResult{}, failed(err)
	}
	label := sentiment.Label(res.Polarity)
	log.Info().
		Float64("score", res.Polarity).
		Str("label", label).
		Str("method", res.Method).
		Msg("sentiment scored")

	cat := s.table.Classify(textproc.Lower(text))
	log.Info().Str("category", cat.Category).Float64("confidence", cat.Confidence).Msg("text classified")

	phrases := keyphrase.Extract(text, s.maxPhrases)
	log.Info().Strs("key_phrases", phrases).Msg("key phrases extracted")

	stats := textstats.Compute(text)
	log.Info().
		Float64("elapsed_ms", float64(s.now().Sub(start).Microseconds())/1000).
		Int("word_count", stats.WordCount).
		Float64("reading_time_minutes", stats.ReadingTimeMinutes).
		Msg("analysis completed")

	return domain.AnalysisResult{
		SentimentScore:     res.Polarity,
		SentimentLabel:     label,
		SubjectivityScore:  res.Subjectivity,
		TextCategory:       cat.Category,
		CategoryConfidence: cat.Confidence,
		KeyPhrases:         phrases,
		WordCount:          stats.WordCount,
		ReadingTimeMinutes: stats.ReadingTimeMinutes,
	}, nil
}

// failed wraps cause as the internal error reported to clients
func failed(cause error) error {
	return perr.Wrap(cause, perr.ErrorCodeUnknown, fmt.Sprintf("Analysis failed: %v", cause))
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	r := []rune(s)
	return string(r[:previewLen]) + "..."
}
